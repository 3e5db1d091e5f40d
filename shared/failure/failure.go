package failure

import (
	"errors"
	"net/http"
)

// Business error codes surfaced to API clients inside the error envelope.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeReservationNotAvailable = "RESERVATION_NOT_AVAILABLE"
	CodeConflict                = "CONFLICT"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeForbidden               = "FORBIDDEN"
	CodeTooManyRequests         = "TOO_MANY_REQUESTS"
	CodeInternalError           = "INTERNAL_ERROR"
	CodeNotImplemented          = "NOT_IMPLEMENTED"
)

// Failure is a wrapper for business error codes and messages, carrying the
// HTTP status the transport layer should map it to.
type Failure struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Status: http.StatusBadRequest, Code: CodeValidationError, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Status: http.StatusBadRequest, Code: CodeValidationError, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Status: http.StatusForbidden, Code: CodeForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with the VALIDATION_ERROR code and message derived from an error interface.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusBadRequest,
			Code:    CodeValidationError,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with the VALIDATION_ERROR code and message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationError,
		Message: msg,
	}
}

// ReservationNotAvailable returns a new Failure for a slot with no eligible free table.
func ReservationNotAvailable(msg string) error {
	return &Failure{
		Status:  http.StatusBadRequest,
		Code:    CodeReservationNotAvailable,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Status:  http.StatusUnauthorized,
		Code:    CodeUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Status:  http.StatusInternalServerError,
			Code:    CodeInternalError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Status:  http.StatusNotImplemented,
		Code:    CodeNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Status:  http.StatusConflict,
		Code:    CodeConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: msg,
	}
}

// GetStatus returns the HTTP status of an error interface.
func GetStatus(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Status
	}

	return http.StatusInternalServerError
}

// GetCode returns the business error code of an error interface.
func GetCode(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternalError
}
