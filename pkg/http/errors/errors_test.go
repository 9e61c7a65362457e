package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondValidationErrorsListsFields(t *testing.T) {
	type payload struct {
		TargetMarks int `validate:"gte=0"`
	}
	err := validator.New().Struct(payload{TargetMarks: -1})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	RespondValidationErrors(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeValidationFailed, body.Error)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "TargetMarks", body.Fields[0].Field)
	assert.Equal(t, "gte", body.Fields[0].Rule)
	assert.Equal(t, "must be at least 0", body.Fields[0].Message)
}

func TestRespondValidationErrorsFallsBackToBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationErrors(rec, fmt.Errorf("boom"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeInvalidRequest)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
