package repository

import (
	"context"
	"fmt"

	sqlcgen "github.com/gokatarajesh/exam-assembler/internal/db/sqlc"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

type questionStore interface {
	ListActiveQuestions(ctx context.Context) ([]sqlcgen.Question, error)
}

// QuestionRepository wraps sqlc queries for the question inventory.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// ListInventory loads every active question as a selection candidate.
func (r *QuestionRepository) ListInventory(ctx context.Context) ([]selection.Question, error) {
	rows, err := r.store.ListActiveQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active questions: %w", err)
	}
	out := make([]selection.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSelectionQuestion(row))
	}
	return out, nil
}

func toSelectionQuestion(row sqlcgen.Question) selection.Question {
	return selection.Question{
		ID:         row.ID,
		Marks:      int(row.Marks),
		Difficulty: selection.Difficulty(row.Difficulty),
		Tags:       row.Tags,
		Status:     selection.Status(row.Status),
	}
}
