package selection

// node is one reconstruction step in the balanced DP arena.
type node struct {
	item   int32 // index into the pool, -1 for the empty root
	parent int32
	idSum  int64
	prof   profile
}

// layer holds the reconstructions kept for one reachable sum, at most one per difficulty
// profile. nodes is a heap with the worst-ranked reconstruction on top so a full layer can
// evict in O(log n).
type layer struct {
	nodes []int32
	pos   map[profile]int
}

type balancedSearch struct {
	arena  []node
	layers []layer
	bal    balancer
	limit  int
}

// exactBalanced runs a subset-sum DP over sums 0..target that keeps, for every reachable sum,
// the best reconstruction per distinct difficulty profile. Two partial reconstructions with
// the same sum and profile extend identically, so only the lower identifier sum is kept and
// the search is exhaustive while no layer holds more than limit profiles. Past that the worst
// ranked profile is evicted. The winning reconstruction at target is accepted only when it
// mixes at least two tiers in a pool that offers two or more.
func exactBalanced(pool []Question, target int, bal balancer, limit int) ([]Question, bool) {
	if target <= 0 || len(pool) == 0 {
		return nil, false
	}
	if limit < 1 {
		limit = 1
	}

	b := &balancedSearch{
		arena:  []node{{item: -1, parent: -1}},
		layers: make([]layer, target+1),
		bal:    bal,
		limit:  limit,
	}
	b.layers[0].nodes = []int32{0}

	for i, q := range pool {
		m := q.Marks
		if m > target {
			continue
		}
		t := tierIndex(q.Difficulty)
		for s := target; s >= m; s-- {
			for _, pi := range b.layers[s-m].nodes {
				parent := b.arena[pi]
				cand := node{item: int32(i), parent: pi, idSum: parent.idSum + q.ID, prof: parent.prof}
				cand.prof[t]++
				b.offer(s, cand)
			}
		}
	}

	final := b.layers[target].nodes
	if len(final) == 0 {
		return nil, false
	}
	best := final[0]
	for _, idx := range final[1:] {
		if bal.rank(b.arena[idx], b.arena[best]) < 0 {
			best = idx
		}
	}
	if bal.present >= 2 && b.arena[best].prof.coverage() < 2 {
		return nil, false
	}
	return reconstruct(pool, b.arena, best), true
}

func (b *balancedSearch) offer(s int, cand node) {
	l := &b.layers[s]
	if k, ok := l.pos[cand.prof]; ok {
		if cand.idSum < b.arena[l.nodes[k]].idSum {
			l.nodes[k] = b.store(cand)
			b.down(l, k)
		}
		return
	}
	if len(l.nodes) < b.limit {
		if l.pos == nil {
			l.pos = make(map[profile]int)
		}
		l.nodes = append(l.nodes, b.store(cand))
		l.pos[cand.prof] = len(l.nodes) - 1
		b.up(l, len(l.nodes)-1)
		return
	}
	top := b.arena[l.nodes[0]]
	if b.bal.rank(cand, top) < 0 {
		delete(l.pos, top.prof)
		l.nodes[0] = b.store(cand)
		l.pos[cand.prof] = 0
		b.down(l, 0)
	}
}

func (b *balancedSearch) store(n node) int32 {
	b.arena = append(b.arena, n)
	return int32(len(b.arena) - 1)
}

func (b *balancedSearch) worse(l *layer, i, j int) bool {
	return b.bal.rank(b.arena[l.nodes[i]], b.arena[l.nodes[j]]) > 0
}

func (b *balancedSearch) swap(l *layer, i, j int) {
	l.nodes[i], l.nodes[j] = l.nodes[j], l.nodes[i]
	l.pos[b.arena[l.nodes[i]].prof] = i
	l.pos[b.arena[l.nodes[j]].prof] = j
}

func (b *balancedSearch) up(l *layer, i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !b.worse(l, i, p) {
			return
		}
		b.swap(l, i, p)
		i = p
	}
}

func (b *balancedSearch) down(l *layer, i int) {
	n := len(l.nodes)
	for {
		w := i
		if c := 2*i + 1; c < n && b.worse(l, c, w) {
			w = c
		}
		if c := 2*i + 2; c < n && b.worse(l, c, w) {
			w = c
		}
		if w == i {
			return
		}
		b.swap(l, i, w)
		i = w
	}
}

// distinctProfiles bounds how many difficulty profiles any sum up to target can carry:
// the product of (questions per tier + 1), saturated at limit.
func distinctProfiles(pool []Question, target int, limit int) int {
	var perTier [3]int64
	for _, q := range pool {
		if q.Marks <= target {
			perTier[tierIndex(q.Difficulty)]++
		}
	}
	bound := int64(1)
	for _, c := range perTier {
		bound *= c + 1
		if bound >= int64(limit) {
			return limit
		}
	}
	return int(bound)
}

func reconstruct(pool []Question, arena []node, idx int32) []Question {
	var out []Question
	for idx >= 0 && arena[idx].item >= 0 {
		out = append(out, pool[arena[idx].item])
		idx = arena[idx].parent
	}
	return out
}

// exactUnbalanced is the classic reachable[s] DP. The first item to reach a sum owns it, so
// the reconstruction is canonical for a given pool order.
func exactUnbalanced(pool []Question, target int) ([]Question, bool) {
	if target <= 0 || len(pool) == 0 {
		return nil, false
	}

	const unreachable = -1
	root := len(pool)
	reach := make([]int, target+1)
	for s := range reach {
		reach[s] = unreachable
	}
	reach[0] = root

	for i, q := range pool {
		for s := target; s >= q.Marks; s-- {
			if reach[s] == unreachable && reach[s-q.Marks] != unreachable {
				reach[s] = i
			}
		}
	}
	if reach[target] == unreachable {
		return nil, false
	}

	var out []Question
	for s := target; s > 0; {
		q := pool[reach[s]]
		out = append(out, q)
		s -= q.Marks
	}
	return out, true
}
