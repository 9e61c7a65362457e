package exam

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
	httperrors "github.com/gokatarajesh/exam-assembler/pkg/http/errors"
)

type examService interface {
	Preview(ctx context.Context, req PreviewRequest) (selection.Result, error)
	Assign(ctx context.Context, examID int64) (Assignment, error)
	Get(ctx context.Context, examID int64) (Detail, error)
	DetectSubject(title string) string
}

// HTTPHandler exposes REST endpoints for selections and exam assignment.
type HTTPHandler struct {
	svc      examService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPHandler constructs an exam HTTP handler.
func NewHTTPHandler(svc examService, validate *validator.Validate, logger zerolog.Logger) *HTTPHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &HTTPHandler{
		svc:      svc,
		validate: validate,
		logger:   logger.With().Str("component", "exam_http").Logger(),
	}
}

// Preview handles POST /v1/selections
func (h *HTTPHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondValidationErrors(w, err)
		return
	}

	res, err := h.svc.Preview(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DetectSubject handles GET /v1/subjects/detect?title=...
func (h *HTTPHandler) DetectSubject(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidRequest, "title is required", "title")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"tag": h.svc.DetectSubject(title)})
}

// Get handles GET /v1/exams/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	examID, ok := parseExamID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.Get(r.Context(), examID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Assign handles POST /v1/exams/{id}/questions
func (h *HTTPHandler) Assign(w http.ResponseWriter, r *http.Request) {
	examID, ok := parseExamID(w, r)
	if !ok {
		return
	}
	assignment, err := h.svc.Assign(r.Context(), examID)
	if err != nil {
		var failed *SelectionFailedError
		if errors.As(err, &failed) {
			httperrors.RespondUnprocessable(w, httperrors.ErrCodeSelectionFailed, err.Error(), map[string]interface{}{
				"reason":      failed.Reason,
				"tag":         failed.Tag,
				"remediation": Remediation(assignment.Exam.Name, failed.Tag, examID),
			})
			return
		}
		h.respondError(w, err)
		return
	}

	res := assignment.Result
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exam_id":                 assignment.Exam.ID,
		"exam_uuid":               assignment.Exam.UUID.String(),
		"exam_name":               assignment.Exam.Name,
		"tag":                     assignment.Tag,
		"question_ids":            res.IDs(),
		"total_questions":         len(res.Selected),
		"total_marks":             res.TotalMarks,
		"algorithm_used":          res.Algorithm,
		"avg_marks_per_question":  res.Metadata.AvgMarksPerQuestion,
		"difficulty_distribution": res.Metadata.DifficultyDistribution,
	})
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selection.ErrInvalidRequest):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, ErrExamNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeExamNotFound, err.Error())
	case errors.Is(err, ErrTargetTooLarge):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeTargetTooLarge, err.Error())
	case errors.Is(err, ErrNoActiveQuestions):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeNoActiveQuestions, err.Error(), nil)
	case errors.Is(err, ErrNothingToAssign):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeAssignFailed, err.Error(), nil)
	default:
		h.logger.Error().Err(err).Msg("exam request failed")
		httperrors.RespondInternalError(w, "internal error")
	}
}

func parseExamID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidExamID, "exam id must be a positive integer", "id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
