package response

// ErrCode is a typed error code enum for consistent error identification in
// logs and handlers. The wire contract carries only the message text.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrEmailTaken     ErrCode = "EMAIL_TAKEN"
	ErrCourseNotFound ErrCode = "COURSE_NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the client-facing message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "incorrect credentials"
	case ErrTokenRequired:
		return "authorization token required"
	case ErrTokenInvalid:
		return "invalid authorization token"
	case ErrValidation:
		return "invalid data"
	case ErrInvalidID:
		return "invalid id format"
	case ErrEmailTaken:
		return "account already exists"
	case ErrCourseNotFound:
		return "course not found"
	case ErrInternal:
		return "internal server error"
	default:
		return "unexpected error"
	}
}
