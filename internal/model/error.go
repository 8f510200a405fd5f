package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses. Clients only ever see these plus a
// domain message; raw database/driver text is never exposed.
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidReference   = "INVALID_REFERENCE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidReference reports a write that pointed at a missing row, named
// by what it referenced (user, dish, restaurant).
func NewInvalidReference(reference string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidReference,
		Message: "referenced " + reference + " does not exist",
	}
}

// Common domain errors.
var (
	ErrRestaurantNotFound = NewDomainError(ErrCodeNotFound, "Restaurant not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrDishNotFound       = NewDomainError(ErrCodeInvalidReference, "One or more dishes not found")
	ErrUnknownUser        = NewDomainError(ErrCodeInvalidReference, "Session user no longer exists")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrEmptyOrder         = NewDomainError(ErrCodeValidationFailed, "At least one valid dish required")
	ErrInvalidQuantity    = NewDomainError(ErrCodeValidationFailed, "Quantity must be greater than zero")
	ErrInvalidRating      = NewDomainError(ErrCodeValidationFailed, "Rating must be between 1 and 5")
	ErrNameRequired       = NewDomainError(ErrCodeValidationFailed, "Name must not be empty")
)
