package exam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/db/repository"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// Inventory loads selection candidates.
type Inventory interface {
	ListInventory(ctx context.Context) ([]selection.Question, error)
}

// Store persists exams and their question lists.
type Store interface {
	GetByID(ctx context.Context, id int64) (repository.Exam, error)
	ListQuestions(ctx context.Context, examID int64) ([]repository.ExamQuestion, error)
	ReplaceQuestions(ctx context.Context, examID int64, questionIDs []int64) error
}

// Selector runs the selection engine.
type Selector interface {
	Select(req selection.Request, inventory []selection.Question) (selection.Result, error)
}

// ResultCache defines cache behavior (implemented by Redis-backed Cache).
type ResultCache interface {
	Get(ctx context.Context, req selection.Request, fingerprint string) (*selection.Result, error)
	Set(ctx context.Context, req selection.Request, fingerprint string, res selection.Result) error
}

// Recorder receives per-call selection measurements.
type Recorder interface {
	Observe(res selection.Result, inventorySize int, took time.Duration)
	CacheHit(hit bool)
}

type ServiceOptions struct {
	Questions      Inventory
	Exams          Store
	Engine         Selector
	Cache          ResultCache
	Metrics        Recorder
	Subjects       *SubjectDetector
	MaxTargetMarks int
	Logger         zerolog.Logger
}

// Service assembles exams from the question inventory.
type Service struct {
	questions Inventory
	exams     Store
	engine    Selector
	cache     ResultCache
	metrics   Recorder
	subjects  *SubjectDetector
	maxTarget int
	logger    zerolog.Logger
}

func NewService(opts ServiceOptions) *Service {
	subjects := opts.Subjects
	if subjects == nil {
		subjects = NewSubjectDetector(nil)
	}
	return &Service{
		questions: opts.Questions,
		exams:     opts.Exams,
		engine:    opts.Engine,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		subjects:  subjects,
		maxTarget: opts.MaxTargetMarks,
		logger:    opts.Logger.With().Str("component", "exam").Logger(),
	}
}

// PreviewRequest asks for a selection without persisting it.
type PreviewRequest struct {
	TargetMarks int    `json:"target_marks" validate:"gte=0"`
	Tag         string `json:"tag" validate:"max=64,excludesall=0x2C"`
}

// Assignment is the outcome of a successful Assign call.
type Assignment struct {
	Exam   repository.Exam  `json:"exam"`
	Tag    string           `json:"tag,omitempty"`
	Result selection.Result `json:"result"`
	// InventorySize is the number of active questions considered before tag filtering.
	InventorySize int `json:"inventory_size"`
}

// Detail is an exam together with its currently assigned questions.
type Detail struct {
	Exam      repository.Exam           `json:"exam"`
	Questions []repository.ExamQuestion `json:"questions"`
}

// DetectSubject exposes the title-to-tag rules.
func (s *Service) DetectSubject(title string) string {
	return s.subjects.Detect(title)
}

// Preview runs the engine against the current inventory. Unsuccessful
// selections are returned as results, not errors.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (selection.Result, error) {
	if err := s.checkTarget(req.TargetMarks); err != nil {
		return selection.Result{}, err
	}
	inventory, err := s.questions.ListInventory(ctx)
	if err != nil {
		return selection.Result{}, err
	}
	return s.run(ctx, selection.Request{
		TargetMarks: req.TargetMarks,
		Filter:      selection.Filter{Tag: req.Tag},
	}, inventory)
}

// Get loads an exam and its assigned questions.
func (s *Service) Get(ctx context.Context, examID int64) (Detail, error) {
	exam, err := s.loadExam(ctx, examID)
	if err != nil {
		return Detail{}, err
	}
	questions, err := s.exams.ListQuestions(ctx, examID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Exam: exam, Questions: questions}, nil
}

// Assign selects questions for an exam's total marks, filtered by the subject
// detected from its name, and replaces the exam's question list.
func (s *Service) Assign(ctx context.Context, examID int64) (Assignment, error) {
	exam, err := s.loadExam(ctx, examID)
	if err != nil {
		return Assignment{}, err
	}
	log := s.logger.With().Int64("exam_id", exam.ID).Str("exam", exam.Name).Logger()

	if exam.TotalMarks == 0 {
		return Assignment{Exam: exam}, ErrNothingToAssign
	}
	if err := s.checkTarget(exam.TotalMarks); err != nil {
		return Assignment{Exam: exam}, err
	}

	inventory, err := s.questions.ListInventory(ctx)
	if err != nil {
		return Assignment{Exam: exam}, err
	}
	if len(inventory) == 0 {
		return Assignment{Exam: exam}, ErrNoActiveQuestions
	}
	log.Info().Int("active_questions", len(inventory)).Msg("inventory loaded")

	tag := s.subjects.Detect(exam.Name)
	if tag != "" {
		log.Info().Str("tag", tag).Msg("subject detected")
	} else {
		log.Info().Msg("no subject detected; using all questions")
	}

	out := Assignment{Exam: exam, Tag: tag, InventorySize: len(inventory)}
	res, err := s.run(ctx, selection.Request{
		TargetMarks: exam.TotalMarks,
		Filter:      selection.Filter{Tag: tag},
	}, inventory)
	if err != nil {
		return out, err
	}
	out.Result = res
	if !res.Success || len(res.Selected) == 0 {
		return out, &SelectionFailedError{Reason: res.FailureReason, Tag: tag}
	}

	if err := s.exams.ReplaceQuestions(ctx, exam.ID, res.IDs()); err != nil {
		return out, fmt.Errorf("replace exam questions: %w", err)
	}
	log.Info().
		Int("questions", len(res.Selected)).
		Int("total_marks", res.TotalMarks).
		Str("algorithm", string(res.Algorithm)).
		Msg("questions assigned")

	return out, nil
}

func (s *Service) loadExam(ctx context.Context, examID int64) (repository.Exam, error) {
	exam, err := s.exams.GetByID(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Exam{}, fmt.Errorf("%w: %d", ErrExamNotFound, examID)
		}
		return repository.Exam{}, err
	}
	return exam, nil
}

func (s *Service) checkTarget(target int) error {
	if s.maxTarget > 0 && target > s.maxTarget {
		return fmt.Errorf("%w: %d > %d", ErrTargetTooLarge, target, s.maxTarget)
	}
	return nil
}

func (s *Service) run(ctx context.Context, req selection.Request, inventory []selection.Question) (selection.Result, error) {
	var fingerprint string
	if s.cache != nil {
		fingerprint = Fingerprint(inventory)
		cached, err := s.cache.Get(ctx, req, fingerprint)
		if err != nil {
			s.logger.Warn().Err(err).Msg("selection cache read failed")
		}
		if cached != nil {
			s.recordCache(true)
			return *cached, nil
		}
		s.recordCache(false)
	}

	start := time.Now()
	res, err := s.engine.Select(req, inventory)
	took := time.Since(start)
	if err != nil {
		return selection.Result{}, err
	}
	if s.metrics != nil {
		s.metrics.Observe(res, len(inventory), took)
	}

	event := s.logger.Info()
	if !res.Success {
		event = s.logger.Warn().Str("reason", string(res.FailureReason))
	}
	event.
		Int("target", req.TargetMarks).
		Str("tag", req.Filter.Tag).
		Int("inventory", len(inventory)).
		Int("total_marks", res.TotalMarks).
		Str("algorithm", string(res.Algorithm)).
		Dur("took", took).
		Msg("selection finished")

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, fingerprint, res); err != nil {
			s.logger.Warn().Err(err).Msg("selection cache write failed")
		}
	}
	return res, nil
}

func (s *Service) recordCache(hit bool) {
	if s.metrics != nil {
		s.metrics.CacheHit(hit)
	}
}
