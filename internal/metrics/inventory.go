package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// InventoryRecorder publishes the shape of the active question inventory.
type InventoryRecorder struct {
	questions *prometheus.GaugeVec
	marks     *prometheus.GaugeVec
}

func NewInventoryRecorder(reg prometheus.Registerer) *InventoryRecorder {
	r := &InventoryRecorder{
		questions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "exam_assembler",
			Name:      "inventory_questions",
			Help:      "Active questions by difficulty.",
		}, []string{"difficulty"}),
		marks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "exam_assembler",
			Name:      "inventory_marks",
			Help:      "Sum of marks of active questions by difficulty.",
		}, []string{"difficulty"}),
	}
	reg.MustRegister(r.questions, r.marks)
	return r
}

// SetInventory replaces the gauges with the given snapshot.
func (r *InventoryRecorder) SetInventory(inventory []selection.Question) {
	counts := map[selection.Difficulty]int{}
	marks := map[selection.Difficulty]int{}
	for _, q := range inventory {
		if q.Status != selection.StatusActive {
			continue
		}
		counts[q.Difficulty]++
		marks[q.Difficulty] += q.Marks
	}
	for _, d := range []selection.Difficulty{selection.DifficultyEasy, selection.DifficultyMedium, selection.DifficultyHard} {
		r.questions.WithLabelValues(string(d)).Set(float64(counts[d]))
		r.marks.WithLabelValues(string(d)).Set(float64(marks[d]))
	}
}
