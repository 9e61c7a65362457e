package selection

// Difficulty tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// tiers is the fixed presentation and scoring order.
var tiers = [...]Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func tierIndex(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return -1
	}
}

// Status of a question in the bank. Only active questions are eligible.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Question is a read-only inventory record.
type Question struct {
	ID         int64      `json:"id"`
	Marks      int        `json:"marks"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags,omitempty"`
	Status     Status     `json:"status"`
}

// Filter restricts the candidate pool. An empty Tag means no subject restriction.
type Filter struct {
	Tag string `json:"tag,omitempty"`
}

// Request is built per call by the caller.
type Request struct {
	TargetMarks int    `json:"target_marks"`
	Filter      Filter `json:"filter"`
}

// Algorithm identifies which strategy produced a result.
type Algorithm string

const (
	AlgorithmExactBalanced   Algorithm = "exact_balanced"
	AlgorithmExactUnbalanced Algorithm = "exact_unbalanced"
	AlgorithmGreedyNearest   Algorithm = "greedy_nearest"
	AlgorithmZeroTarget      Algorithm = "zero_target"
	AlgorithmNone            Algorithm = "none"
)

// FailureReason explains an unsuccessful result.
type FailureReason string

const (
	ReasonEmptyPool             FailureReason = "empty_pool"
	ReasonNoFeasibleCombination FailureReason = "no_feasible_combination"
	ReasonSearchBoundExceeded   FailureReason = "search_bound_exceeded"
)

// Metadata summarises a selection.
type Metadata struct {
	AvgMarksPerQuestion    float64            `json:"avg_marks_per_question"`
	DifficultyDistribution map[Difficulty]int `json:"difficulty_distribution"`
}

// Result is returned to the caller and never retained by the engine.
type Result struct {
	Success       bool          `json:"success"`
	Selected      []Question    `json:"selected"`
	TotalMarks    int           `json:"total_marks"`
	Algorithm     Algorithm     `json:"algorithm_used"`
	Metadata      Metadata      `json:"metadata"`
	FailureReason FailureReason `json:"failure_reason,omitempty"`
}

// IDs returns the selected question identifiers in presentation order.
func (r Result) IDs() []int64 {
	ids := make([]int64, len(r.Selected))
	for i, q := range r.Selected {
		ids[i] = q.ID
	}
	return ids
}

// Exact reports whether the selection hits the target exactly.
func (r Result) Exact() bool {
	return r.Success && r.Algorithm != AlgorithmGreedyNearest
}
