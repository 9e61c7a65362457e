package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

func TestSetInventory(t *testing.T) {
	rec := NewInventoryRecorder(prometheus.NewRegistry())

	rec.SetInventory([]selection.Question{
		{ID: 1, Marks: 5, Difficulty: selection.DifficultyEasy, Status: selection.StatusActive},
		{ID: 2, Marks: 7, Difficulty: selection.DifficultyEasy, Status: selection.StatusActive},
		{ID: 3, Marks: 9, Difficulty: selection.DifficultyHard, Status: selection.StatusInactive},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.questions.WithLabelValues("easy")))
	assert.Equal(t, 12.0, testutil.ToFloat64(rec.marks.WithLabelValues("easy")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.questions.WithLabelValues("hard")))

	rec.SetInventory(nil)
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.questions.WithLabelValues("easy")))
}
