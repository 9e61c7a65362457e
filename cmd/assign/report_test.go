package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gokatarajesh/exam-assembler/internal/db/repository"
	"github.com/gokatarajesh/exam-assembler/internal/exam"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

func TestReportSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	a := exam.Assignment{
		Exam: repository.Exam{ID: 1, UUID: uuid.New(), Name: "Python Basics", TotalMarks: 25},
		Tag:           "python",
		InventorySize: 42,
		Result: selection.Result{
			Success:    true,
			Selected:   []selection.Question{{ID: 1, Marks: 10}, {ID: 2, Marks: 15}},
			TotalMarks: 25,
			Algorithm:  selection.AlgorithmExactBalanced,
			Metadata: selection.Metadata{
				AvgMarksPerQuestion:    12.5,
				DifficultyDistribution: map[selection.Difficulty]int{selection.DifficultyEasy: 1, selection.DifficultyMedium: 1, selection.DifficultyHard: 0},
			},
		},
	}

	code := report(logger, 1, a, nil)

	assert.Equal(t, 0, code)
	out := buf.String()
	assert.Contains(t, out, `"algorithm":"exact_balanced"`)
	assert.Contains(t, out, `"avg_marks_per_question":12.5`)
	assert.Contains(t, out, `"easy":1`)
	assert.Contains(t, out, `"active_questions":42`)
	assert.NotContains(t, out, "short_by")
}

func TestReportNearMatchWarns(t *testing.T) {
	var buf bytes.Buffer
	a := exam.Assignment{
		Exam:   repository.Exam{ID: 1, Name: "General", TotalMarks: 20},
		Result: selection.Result{Success: true, TotalMarks: 18, Algorithm: selection.AlgorithmGreedyNearest},
	}

	assert.Equal(t, 0, report(zerolog.New(&buf), 1, a, nil))
	assert.Contains(t, buf.String(), `"short_by":2`)
}

func TestReportSelectionFailurePrintsRemediation(t *testing.T) {
	var buf bytes.Buffer
	a := exam.Assignment{Exam: repository.Exam{ID: 5, Name: "Core Java"}}
	err := &exam.SelectionFailedError{Reason: selection.ReasonEmptyPool, Tag: "java"}

	code := report(zerolog.New(&buf), 5, a, err)

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "JAVA")
	assert.Contains(t, buf.String(), `"reason":"empty_pool"`)
}

func TestReportOtherErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 1, report(zerolog.New(&buf), 9, exam.Assignment{}, fmt.Errorf("wrap: %w", exam.ErrExamNotFound)))
	assert.Contains(t, buf.String(), "exam not found")
}
