package exam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/exam-assembler/internal/db/repository"
	httperrors "github.com/gokatarajesh/exam-assembler/pkg/http/errors"
)

func newTestMux(store *mockStore) *http.ServeMux {
	svc := newTestService(&stubInventory{questions: pythonInventory()}, store, nil, nil)
	h := NewHTTPHandler(svc, nil, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/selections", h.Preview)
	mux.HandleFunc("GET /v1/subjects/detect", h.DetectSubject)
	mux.HandleFunc("GET /v1/exams/{id}", h.Get)
	mux.HandleFunc("POST /v1/exams/{id}/questions", h.Assign)
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestPreviewEndpoint(t *testing.T) {
	mux := newTestMux(new(mockStore))

	rec := serve(mux, http.MethodPost, "/v1/selections", `{"target_marks":25,"tag":"python"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "exact_balanced", body["algorithm_used"])
	assert.Equal(t, 25.0, body["total_marks"])
}

func TestPreviewEndpointRejectsBadInput(t *testing.T) {
	mux := newTestMux(new(mockStore))

	cases := map[string]string{
		"negative target": `{"target_marks":-5}`,
		"comma tag":       `{"target_marks":5,"tag":"python,sql"}`,
		"space tag":       `{"target_marks":5,"tag":"py thon"}`,
		"not json":        `nope`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, "/v1/selections", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDetectSubjectEndpoint(t *testing.T) {
	mux := newTestMux(new(mockStore))

	rec := serve(mux, http.MethodGet, "/v1/subjects/detect?title=Intro+to+Node.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tag":"nodejs"}`, rec.Body.String())

	rec = serve(mux, http.MethodGet, "/v1/subjects/detect", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignEndpoint(t *testing.T) {
	store := new(mockStore)
	store.On("GetByID", mock.Anything, int64(7)).Return(repository.Exam{ID: 7, Name: "Python Basics", TotalMarks: 25}, nil)
	store.On("ReplaceQuestions", mock.Anything, int64(7), []int64{1, 2}).Return(nil)
	mux := newTestMux(store)

	rec := serve(mux, http.MethodPost, "/v1/exams/7/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "python", body["tag"])
	assert.Equal(t, 2.0, body["total_questions"])
	assert.Equal(t, 12.5, body["avg_marks_per_question"])
}

func TestAssignEndpointErrors(t *testing.T) {
	store := new(mockStore)
	store.On("GetByID", mock.Anything, int64(404)).Return(repository.Exam{}, repository.ErrNotFound)
	store.On("GetByID", mock.Anything, int64(5)).Return(repository.Exam{ID: 5, Name: "Core Java", TotalMarks: 20}, nil)
	mux := newTestMux(store)

	rec := serve(mux, http.MethodPost, "/v1/exams/abc/questions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(mux, http.MethodPost, "/v1/exams/404/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(mux, http.MethodPost, "/v1/exams/5/questions", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body httperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, httperrors.ErrCodeSelectionFailed, body.Error)
	assert.Equal(t, "empty_pool", body.Details["reason"])
	assert.NotEmpty(t, body.Details["remediation"])
}

func TestGetEndpoint(t *testing.T) {
	store := new(mockStore)
	store.On("GetByID", mock.Anything, int64(2)).Return(repository.Exam{ID: 2, Name: "SQL"}, nil)
	store.On("ListQuestions", mock.Anything, int64(2)).Return([]repository.ExamQuestion{}, nil)
	mux := newTestMux(store)

	rec := serve(mux, http.MethodGet, "/v1/exams/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"SQL"`)
}
