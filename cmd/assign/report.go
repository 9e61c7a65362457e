package main

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/exam"
	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// report logs the outcome of an assignment and returns the process exit code.
func report(logger zerolog.Logger, examID int64, a exam.Assignment, err error) int {
	var failed *exam.SelectionFailedError
	switch {
	case err == nil:
	case errors.As(err, &failed):
		logger.Error().
			Int64("exam_id", examID).
			Int("active_questions", a.InventorySize).
			Str("reason", string(failed.Reason)).
			Str("tag", failed.Tag).
			Msg("no questions could be selected for this exam")
		for _, line := range exam.Remediation(a.Exam.Name, failed.Tag, examID) {
			logger.Warn().Msg(line)
		}
		return 1
	case errors.Is(err, exam.ErrNoActiveQuestions):
		logger.Error().Err(err).Msg("import questions before assigning exams")
		return 1
	default:
		logger.Error().Err(err).Int64("exam_id", examID).Msg("assignment failed")
		return 1
	}

	res := a.Result
	dist := res.Metadata.DifficultyDistribution
	logger.Info().
		Str("exam", a.Exam.Name).
		Str("uuid", a.Exam.UUID.String()).
		Str("tag", a.Tag).
		Int("active_questions", a.InventorySize).
		Int("questions", len(res.Selected)).
		Int("total_marks", res.TotalMarks).
		Int("target_marks", a.Exam.TotalMarks).
		Str("algorithm", string(res.Algorithm)).
		Float64("avg_marks_per_question", res.Metadata.AvgMarksPerQuestion).
		Int("easy", dist[selection.DifficultyEasy]).
		Int("medium", dist[selection.DifficultyMedium]).
		Int("hard", dist[selection.DifficultyHard]).
		Msg("questions assigned")
	if !res.Exact() {
		logger.Warn().
			Int("short_by", a.Exam.TotalMarks-res.TotalMarks).
			Msg("no exact combination exists; assigned the closest lower total")
	}
	return 0
}
