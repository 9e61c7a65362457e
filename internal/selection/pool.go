package selection

import (
	"slices"
	"strings"
)

// NormalizeTag lower-cases and trims a tag token.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// buildPool filters the inventory down to eligible candidates sorted by ID.
// Malformed records (non-positive marks, unknown difficulty) are skipped silently.
func buildPool(inventory []Question, filter Filter) []Question {
	tag := NormalizeTag(filter.Tag)

	pool := make([]Question, 0, len(inventory))
	for _, q := range inventory {
		if q.Status != StatusActive || q.Marks <= 0 || tierIndex(q.Difficulty) < 0 {
			continue
		}
		if tag != "" && !hasTag(q.Tags, tag) {
			continue
		}
		q.Tags = slices.Clone(q.Tags)
		pool = append(pool, q)
	}

	slices.SortStableFunc(pool, func(a, b Question) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	// duplicate identifiers keep the first record
	return slices.CompactFunc(pool, func(a, b Question) bool { return a.ID == b.ID })
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if NormalizeTag(t) == want {
			return true
		}
	}
	return false
}

// tiersPresent reports which difficulty tiers occur in the pool.
func tiersPresent(pool []Question) [3]bool {
	var present [3]bool
	for _, q := range pool {
		present[tierIndex(q.Difficulty)] = true
	}
	return present
}
