package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/exam-assembler/internal/db/sqlc"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Exam is a stored exam shell.
type Exam struct {
	ID         int64     `json:"id"`
	UUID       uuid.UUID `json:"uuid"`
	Name       string    `json:"name"`
	TotalMarks int       `json:"total_marks"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExamQuestion is a question attached to an exam.
type ExamQuestion struct {
	selection.Question
	Body          string `json:"body"`
	OrderPosition int    `json:"order_position"`
}

type examStore interface {
	GetExam(ctx context.Context, id int64) (sqlcgen.Exam, error)
	ListExamQuestions(ctx context.Context, examID int64) ([]sqlcgen.ListExamQuestionsRow, error)
}

// ExamWriter is the subset of queries that mutate an exam's question list.
type ExamWriter interface {
	DeleteExamQuestions(ctx context.Context, examID int64) error
	InsertExamQuestions(ctx context.Context, arg sqlcgen.InsertExamQuestionsParams) error
}

// TxRunner executes fn inside a single transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ExamWriter) error) error
}

// ExamRepository contains DB helpers for exams and their questions.
type ExamRepository struct {
	store examStore
	tx    TxRunner
}

// NewExamRepository constructs a new exam repository.
func NewExamRepository(store examStore, tx TxRunner) *ExamRepository {
	return &ExamRepository{store: store, tx: tx}
}

// GetByID loads an exam or returns ErrNotFound.
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (Exam, error) {
	row, err := r.store.GetExam(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Exam{}, ErrNotFound
		}
		return Exam{}, fmt.Errorf("get exam %d: %w", id, err)
	}
	exam := Exam{
		ID:         row.ID,
		Name:       row.Name,
		TotalMarks: int(row.TotalMarks),
	}
	if row.Uuid.Valid {
		exam.UUID = uuid.UUID(row.Uuid.Bytes)
	}
	if row.CreatedAt.Valid {
		exam.CreatedAt = row.CreatedAt.Time
	}
	return exam, nil
}

// ListQuestions returns the exam's questions in presentation order.
func (r *ExamRepository) ListQuestions(ctx context.Context, examID int64) ([]ExamQuestion, error) {
	rows, err := r.store.ListExamQuestions(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("list exam %d questions: %w", examID, err)
	}
	out := make([]ExamQuestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExamQuestion{
			Question: selection.Question{
				ID:         row.ID,
				Marks:      int(row.Marks),
				Difficulty: selection.Difficulty(row.Difficulty),
				Tags:       row.Tags,
				Status:     selection.Status(row.Status),
			},
			Body:          row.Body,
			OrderPosition: int(row.OrderPosition),
		})
	}
	return out, nil
}

// ReplaceQuestions detaches every question from the exam and attaches
// questionIDs with order_position = index + 1, atomically.
func (r *ExamRepository) ReplaceQuestions(ctx context.Context, examID int64, questionIDs []int64) error {
	return r.tx.InTx(ctx, func(w ExamWriter) error {
		if err := w.DeleteExamQuestions(ctx, examID); err != nil {
			return fmt.Errorf("detach questions: %w", err)
		}
		if len(questionIDs) == 0 {
			return nil
		}
		if err := w.InsertExamQuestions(ctx, sqlcgen.InsertExamQuestionsParams{
			ExamID:      examID,
			QuestionIds: questionIDs,
		}); err != nil {
			return fmt.Errorf("attach questions: %w", err)
		}
		return nil
	})
}
