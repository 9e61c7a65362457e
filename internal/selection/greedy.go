package selection

import "slices"

// greedyNearest packs the largest questions first without exceeding target, then repeatedly
// drops one selected question and refills the gap with smaller unselected ones while that
// raises the total. The total may end below target.
func greedyNearest(pool []Question, target int) ([]Question, bool) {
	if target <= 0 || len(pool) == 0 {
		return nil, false
	}

	order := slices.Clone(pool)
	slices.SortStableFunc(order, func(a, b Question) int {
		if a.Marks != b.Marks {
			return b.Marks - a.Marks
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	chosen := make([]bool, len(order))
	sum := fill(order, chosen, 0, target, -1)

	for sum < target {
		bestSum, bestDrop := sum, -1
		var bestChosen []bool
		for i := range order {
			if !chosen[i] {
				continue
			}
			trial := slices.Clone(chosen)
			trial[i] = false
			if s := fill(order, trial, sum-order[i].Marks, target, i); s > bestSum {
				bestSum, bestDrop, bestChosen = s, i, trial
			}
		}
		if bestDrop < 0 {
			break
		}
		chosen, sum = bestChosen, bestSum
	}

	if sum == 0 {
		return nil, false
	}
	selected := make([]Question, 0, len(order))
	for i, q := range order {
		if chosen[i] {
			selected = append(selected, q)
		}
	}
	return selected, true
}

// fill adds unselected questions in order while they fit, skipping index skip, and returns
// the new total.
func fill(order []Question, chosen []bool, sum, target, skip int) int {
	for i, q := range order {
		if i == skip || chosen[i] {
			continue
		}
		if sum+q.Marks <= target {
			chosen[i] = true
			sum += q.Marks
		}
	}
	return sum
}
