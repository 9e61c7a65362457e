package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/exam-assembler/internal/db/sqlc"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

var errExec = errors.New("exec failed")

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListActiveQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func TestQuestionRepository_ListInventory(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("ListActiveQuestions", mock.Anything).Return([]sqlcgen.Question{
		{ID: 7, Body: "What is a goroutine?", Marks: 5, Difficulty: "easy", Tags: []string{"go"}, Status: "active"},
		{ID: 9, Body: "Explain joins", Marks: 10, Difficulty: "hard", Tags: []string{"sql", "database"}, Status: "active"},
	}, nil)

	got, err := repo.ListInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []selection.Question{
		{ID: 7, Marks: 5, Difficulty: selection.DifficultyEasy, Tags: []string{"go"}, Status: selection.StatusActive},
		{ID: 9, Marks: 10, Difficulty: selection.DifficultyHard, Tags: []string{"sql", "database"}, Status: selection.StatusActive},
	}, got)
	store.AssertExpectations(t)
}

func TestQuestionRepository_ListInventoryError(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	store.On("ListActiveQuestions", mock.Anything).Return([]sqlcgen.Question(nil), errExec)

	_, err := repo.ListInventory(context.Background())
	assert.ErrorIs(t, err, errExec)
}
