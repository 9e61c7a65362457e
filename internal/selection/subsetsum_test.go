package selection

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBalancer(pool []Question) balancer {
	return newBalancer([3]int{40, 40, 20}, tiersPresent(pool))
}

func TestExactUnbalancedCanonicalReconstruction(t *testing.T) {
	pool := []Question{
		question(1, 25, DifficultyHard),
		question(2, 10, DifficultyEasy),
		question(3, 15, DifficultyMedium),
	}

	got, ok := exactUnbalanced(pool, 25)
	require.True(t, ok)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestExactUnbalancedInfeasible(t *testing.T) {
	pool := []Question{question(1, 4, DifficultyEasy), question(2, 6, DifficultyEasy)}

	_, ok := exactUnbalanced(pool, 7)
	assert.False(t, ok)
	_, ok = exactUnbalanced(pool, 0)
	assert.False(t, ok)
}

func TestExactUnbalancedUsesEachQuestionOnce(t *testing.T) {
	pool := []Question{question(1, 5, DifficultyEasy)}

	_, ok := exactUnbalanced(pool, 10)
	assert.False(t, ok)
}

func TestExactBalancedPrefersFewerQuestionsOnEqualBalance(t *testing.T) {
	pool := []Question{
		question(1, 2, DifficultyEasy),
		question(2, 2, DifficultyEasy),
		question(3, 2, DifficultyMedium),
		question(4, 2, DifficultyMedium),
		question(5, 4, DifficultyEasy),
		question(6, 4, DifficultyMedium),
	}

	got, ok := exactBalanced(pool, 8, defaultBalancer(pool), 16)
	require.True(t, ok)
	// (1 easy, 1 medium) and (2 easy, 2 medium) share the same ratio; the shorter one wins.
	assert.Equal(t, []int64{5, 6}, ids(got))
}

func TestExactBalancedLowestIdentifierSum(t *testing.T) {
	pool := []Question{
		question(1, 5, DifficultyEasy),
		question(2, 5, DifficultyMedium),
		question(3, 5, DifficultyEasy),
		question(4, 5, DifficultyMedium),
	}

	got, ok := exactBalanced(pool, 10, defaultBalancer(pool), 16)
	require.True(t, ok)
	assert.ElementsMatch(t, []int64{1, 2}, ids(got))
}

func TestExactBalancedRequiresMixWhenPoolOffersOne(t *testing.T) {
	pool := []Question{
		question(1, 10, DifficultyEasy),
		question(2, 10, DifficultyEasy),
		question(3, 7, DifficultyHard),
	}

	_, ok := exactBalanced(pool, 20, defaultBalancer(pool), 16)
	assert.False(t, ok)

	got, ok := exactBalanced(pool, 17, defaultBalancer(pool), 16)
	require.True(t, ok)
	assert.ElementsMatch(t, []int64{1, 3}, ids(got))
}

func TestExactBalancedSurvivesProfileEviction(t *testing.T) {
	pool := make([]Question, 0, 30)
	diffs := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	for i := 1; i <= 30; i++ {
		pool = append(pool, question(int64(i), 1+i%4, diffs[i%3]))
	}

	for target := 1; target <= 40; target++ {
		want, wantOK := exactUnbalanced(pool, target)
		got, ok := exactBalanced(pool, target, defaultBalancer(pool), 1)
		if !wantOK {
			assert.False(t, ok, "target %d", target)
			continue
		}
		if !ok {
			// only single-tier reconstructions survived; the unbalanced strategy covers it
			continue
		}
		sum := 0
		for _, q := range got {
			sum += q.Marks
		}
		assert.Equal(t, target, sum, "target %d", target)
		assert.NotEmpty(t, want)
	}
}

// bestBySum ranks every subset of pool and returns the best reconstruction for each sum.
func bestBySum(pool []Question, bal balancer) map[int]node {
	n := len(pool)
	sums := make([]int, 1<<n)
	nodes := make([]node, 1<<n)
	best := map[int]node{}
	for mask := 1; mask < 1<<n; mask++ {
		i := bits.TrailingZeros(uint(mask))
		prev := mask & (mask - 1)
		q := pool[i]
		sums[mask] = sums[prev] + q.Marks
		nodes[mask] = nodes[prev]
		nodes[mask].idSum += q.ID
		nodes[mask].prof[tierIndex(q.Difficulty)]++
		if cur, ok := best[sums[mask]]; !ok || bal.rank(nodes[mask], cur) < 0 {
			best[sums[mask]] = nodes[mask]
		}
	}
	return best
}

func TestExactBalancedMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	diffs := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

	for round := 0; round < 150; round++ {
		n := 12 + rng.IntN(5)
		pool := make([]Question, 0, n)
		for i := 1; i <= n; i++ {
			pool = append(pool, question(int64(i), 1+rng.IntN(4), diffs[rng.IntN(3)]))
		}
		bal := defaultBalancer(pool)
		want := bestBySum(pool, bal)

		for target := 8; target <= 27; target++ {
			limit := distinctProfiles(pool, target, defaultMaxProfilesPerSum)
			got, ok := exactBalanced(pool, target, bal, limit)

			best, reachable := want[target]
			if !reachable || (bal.present >= 2 && best.prof.coverage() < 2) {
				assert.False(t, ok, "round %d target %d", round, target)
				continue
			}
			require.True(t, ok, "round %d target %d", round, target)

			var gotNode node
			for _, q := range got {
				gotNode.idSum += q.ID
				gotNode.prof[tierIndex(q.Difficulty)]++
			}
			assert.Zero(t, bal.rank(gotNode, best),
				"round %d target %d: got %v, best %v", round, target, gotNode.prof, best.prof)
		}
	}
}

func TestDistinctProfilesSaturates(t *testing.T) {
	pool := []Question{
		question(1, 1, DifficultyEasy),
		question(2, 1, DifficultyEasy),
		question(3, 1, DifficultyMedium),
		question(4, 5, DifficultyHard),
	}

	assert.Equal(t, 6, distinctProfiles(pool, 4, 1024))
	assert.Equal(t, 12, distinctProfiles(pool, 5, 1024))
	assert.Equal(t, 4, distinctProfiles(pool, 5, 4))
}

func TestBalancerComparesCoverageThenDeviation(t *testing.T) {
	bal := newBalancer([3]int{40, 40, 20}, [3]bool{true, true, true})

	assert.Negative(t, bal.compareBalance(profile{1, 1, 0}, profile{0, 0, 1}))
	assert.Negative(t, bal.compareBalance(profile{2, 2, 1}, profile{1, 1, 3}))
	assert.Zero(t, bal.compareBalance(profile{1, 1, 0}, profile{2, 2, 0}))
	assert.Positive(t, bal.compareBalance(profile{0, 3, 0}, profile{0, 2, 1}))
}

func TestBalancerIgnoresAbsentTiers(t *testing.T) {
	bal := newBalancer([3]int{40, 40, 20}, [3]bool{true, true, false})

	num, den := bal.deviation(profile{1, 1, 0})
	assert.Equal(t, int64(0), num)
	assert.Equal(t, int64(2), den)
	assert.Equal(t, 2, bal.present)
}

func TestBalancerFallsBackToEvenWeights(t *testing.T) {
	bal := newBalancer([3]int{0, 0, 0}, [3]bool{true, false, true})

	assert.Equal(t, [3]int64{1, 0, 1}, bal.weights)
	assert.Equal(t, int64(2), bal.total)
}
