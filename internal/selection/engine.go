package selection

import (
	"fmt"
	"strings"
)

// Options configures an Engine. Zero numeric values fall back to defaults in New.
type Options struct {
	// MaxSearchCost bounds the balanced search work, target_marks * pool size * profiles
	// kept per sum. Requests that cannot fit even minProfilesPerSum fail before any DP runs.
	MaxSearchCost int64
	// MaxProfilesPerSum caps the difficulty profiles kept per reachable sum in the balanced search.
	MaxProfilesPerSum int
	// AllowNearMatch enables the greedy fallback that may return fewer marks than requested.
	AllowNearMatch bool
	// Weights is the target difficulty ratio. Missing tiers weigh zero.
	Weights map[Difficulty]int
}

const (
	defaultMaxSearchCost     = 4_000_000
	defaultMaxProfilesPerSum = 1024
	minProfilesPerSum        = 16
)

// DefaultOptions returns production defaults: 40/40/20 easy/medium/hard with near-match enabled.
func DefaultOptions() Options {
	return Options{
		MaxSearchCost:     defaultMaxSearchCost,
		MaxProfilesPerSum: defaultMaxProfilesPerSum,
		AllowNearMatch:    true,
		Weights: map[Difficulty]int{
			DifficultyEasy:   40,
			DifficultyMedium: 40,
			DifficultyHard:   20,
		},
	}
}

// Engine selects question subsets. It holds only immutable configuration and is safe for
// concurrent use.
type Engine struct {
	maxSearchCost     int64
	maxProfilesPerSum int
	allowNearMatch    bool
	weights           [3]int
}

// New creates an engine with the provided options.
func New(opts Options) *Engine {
	e := &Engine{
		maxSearchCost:     opts.MaxSearchCost,
		maxProfilesPerSum: opts.MaxProfilesPerSum,
		allowNearMatch:    opts.AllowNearMatch,
	}
	if e.maxSearchCost <= 0 {
		e.maxSearchCost = defaultMaxSearchCost
	}
	if e.maxProfilesPerSum <= 0 {
		e.maxProfilesPerSum = defaultMaxProfilesPerSum
	}
	weights := opts.Weights
	if weights == nil {
		weights = DefaultOptions().Weights
	}
	for i, d := range tiers {
		if w := weights[d]; w > 0 {
			e.weights[i] = w
		}
	}
	return e
}

// strategy is one state of the selector. run reports false when it cannot produce a subset,
// which advances the chain.
type strategy struct {
	algorithm Algorithm
	run       func(pool []Question, target int) ([]Question, bool)
}

func (e *Engine) chain(pool []Question, profiles int) []strategy {
	bal := newBalancer(e.weights, tiersPresent(pool))
	chain := []strategy{
		{
			algorithm: AlgorithmExactBalanced,
			run: func(pool []Question, target int) ([]Question, bool) {
				return exactBalanced(pool, target, bal, profiles)
			},
		},
		{algorithm: AlgorithmExactUnbalanced, run: exactUnbalanced},
	}
	if e.allowNearMatch {
		chain = append(chain, strategy{algorithm: AlgorithmGreedyNearest, run: greedyNearest})
	}
	return chain
}

// Select picks questions from inventory whose marks sum to req.TargetMarks. Infeasible
// requests come back as unsuccessful results; only structurally invalid requests return an error.
func (e *Engine) Select(req Request, inventory []Question) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}
	if req.TargetMarks == 0 {
		return assemble(nil, AlgorithmZeroTarget, 0), nil
	}

	pool := buildPool(inventory, req.Filter)
	if len(pool) == 0 {
		return failed(ReasonEmptyPool), nil
	}
	profiles, ok := e.profileLimit(pool, req.TargetMarks)
	if !ok {
		return failed(ReasonSearchBoundExceeded), nil
	}

	for _, s := range e.chain(pool, profiles) {
		if selected, ok := s.run(pool, req.TargetMarks); ok {
			return assemble(selected, s.algorithm, req.TargetMarks), nil
		}
	}
	return failed(ReasonNoFeasibleCombination), nil
}

// profileLimit sizes the per-sum profile limit of the balanced search. Pools that cannot
// produce more distinct profiles than the limit are searched exhaustively; larger ones get
// whatever the cost budget leaves, but never fewer than minProfilesPerSum.
func (e *Engine) profileLimit(pool []Question, target int) (int, bool) {
	cells := int64(target) * int64(len(pool))
	limit := distinctProfiles(pool, target, e.maxProfilesPerSum)
	floor := min(minProfilesPerSum, limit)
	if cells*int64(floor) > e.maxSearchCost {
		return 0, false
	}
	if fit := e.maxSearchCost / cells; fit < int64(limit) {
		limit = int(fit)
	}
	return limit, true
}

func validate(req Request) error {
	if req.TargetMarks < 0 {
		return fmt.Errorf("%w: target_marks must not be negative, got %d", ErrInvalidRequest, req.TargetMarks)
	}
	if tag := strings.TrimSpace(req.Filter.Tag); strings.ContainsAny(tag, " \t\r\n,") {
		return fmt.Errorf("%w: tag %q is not a single token", ErrInvalidRequest, req.Filter.Tag)
	}
	return nil
}
