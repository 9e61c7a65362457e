package selection

import "slices"

// assemble packages a selection. Identical input always yields identical output.
func assemble(selected []Question, algorithm Algorithm, target int) Result {
	ordered := presentationOrder(selected)

	total := 0
	for _, q := range ordered {
		total += q.Marks
	}

	res := Result{
		Success:    len(ordered) > 0 || target == 0,
		Selected:   ordered,
		TotalMarks: total,
		Algorithm:  algorithm,
		Metadata:   metadataFor(ordered, total),
	}
	if !res.Success {
		res.Algorithm = AlgorithmNone
		res.FailureReason = ReasonNoFeasibleCombination
	}
	return res
}

func failed(reason FailureReason) Result {
	return Result{
		Success:       false,
		Selected:      []Question{},
		Algorithm:     AlgorithmNone,
		Metadata:      metadataFor(nil, 0),
		FailureReason: reason,
	}
}

// presentationOrder sorts easy to hard, then by ID.
func presentationOrder(selected []Question) []Question {
	ordered := make([]Question, 0, len(selected))
	for _, q := range selected {
		q.Tags = slices.Clone(q.Tags)
		ordered = append(ordered, q)
	}
	slices.SortFunc(ordered, func(a, b Question) int {
		if ta, tb := tierIndex(a.Difficulty), tierIndex(b.Difficulty); ta != tb {
			return ta - tb
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
	return ordered
}

func metadataFor(selected []Question, total int) Metadata {
	dist := make(map[Difficulty]int, len(tiers))
	for _, d := range tiers {
		dist[d] = 0
	}
	for _, q := range selected {
		dist[q.Difficulty]++
	}
	return Metadata{
		AvgMarksPerQuestion:    roundTenths(total, len(selected)),
		DifficultyDistribution: dist,
	}
}

// roundTenths returns total/count rounded half-up to one decimal using integer arithmetic.
func roundTenths(total, count int) float64 {
	if count == 0 {
		return 0
	}
	tenths := (20*int64(total) + int64(count)) / (2 * int64(count))
	return float64(tenths) / 10
}
