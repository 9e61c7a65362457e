package selection

// profile counts selected questions per tier (easy, medium, hard).
type profile [3]int32

func (p profile) count() int64 {
	return int64(p[0]) + int64(p[1]) + int64(p[2])
}

func (p profile) coverage() int {
	n := 0
	for _, c := range p {
		if c > 0 {
			n++
		}
	}
	return n
}

// balancer scores difficulty mixes against a target ratio restricted to the tiers in the pool.
type balancer struct {
	weights [3]int64
	total   int64
	present int
}

func newBalancer(weights [3]int, present [3]bool) balancer {
	var b balancer
	for i, ok := range present {
		if !ok {
			continue
		}
		b.present++
		if weights[i] > 0 {
			b.weights[i] = int64(weights[i])
			b.total += int64(weights[i])
		}
	}
	if b.total == 0 {
		// no usable weights: spread evenly over the tiers that exist
		for i, ok := range present {
			if ok {
				b.weights[i] = 1
				b.total++
			}
		}
	}
	return b
}

// deviation returns the weighted L1 distance from the target ratio as numerator/denominator,
// where the ratio for tier t is weights[t]/total and the share is count[t]/n.
func (b balancer) deviation(p profile) (num, den int64) {
	n := p.count()
	if n == 0 {
		return 0, 1
	}
	for i, w := range b.weights {
		if w == 0 && p[i] == 0 {
			continue
		}
		d := b.total*int64(p[i]) - w*n
		if d < 0 {
			d = -d
		}
		num += d
	}
	return num, n
}

// compareBalance orders two profiles; negative means a is better balanced than b.
func (b balancer) compareBalance(a, c profile) int {
	if ca, cc := a.coverage(), c.coverage(); ca != cc {
		if ca > cc {
			return -1
		}
		return 1
	}
	an, ad := b.deviation(a)
	cn, cd := b.deviation(c)
	left, right := an*cd, cn*ad
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// rank orders candidate reconstructions: balance, then fewer questions, then lower
// identifier sum, then the profile itself so the order is total.
func (b balancer) rank(a node, c node) int {
	if r := b.compareBalance(a.prof, c.prof); r != 0 {
		return r
	}
	if an, cn := a.prof.count(), c.prof.count(); an != cn {
		if an < cn {
			return -1
		}
		return 1
	}
	if a.idSum != c.idSum {
		if a.idSum < c.idSum {
			return -1
		}
		return 1
	}
	for i := range a.prof {
		if a.prof[i] != c.prof[i] {
			if a.prof[i] > c.prof[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
