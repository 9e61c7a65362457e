package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeForbidden              = "forbidden"
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"

	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInvalidExamID    = "invalid_exam_id"

	// Login errors
	ErrCodeLoginFailed   = "login_failed"
	ErrCodeLoginDisabled = "login_disabled"

	// Resource errors
	ErrCodeNotFound          = "not_found"
	ErrCodeExamNotFound      = "exam_not_found"
	ErrCodeNoActiveQuestions = "no_active_questions"
	ErrCodeTargetTooLarge    = "target_too_large"

	// Selection errors
	ErrCodeSelectionFailed = "selection_failed"
	ErrCodeAssignFailed    = "assign_failed"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
