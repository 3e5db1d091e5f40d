package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", failure.NotFound("reservation not found"), http.StatusNotFound, failure.CodeNotFound},
		{"conflict", failure.Conflict("slug taken"), http.StatusConflict, failure.CodeConflict},
		{"bad request from string", failure.BadRequestFromString("invalid input"), http.StatusBadRequest, failure.CodeValidationError},
		{"bad request from error", failure.BadRequest(errors.New("invalid input")), http.StatusBadRequest, failure.CodeValidationError},
		{"reservation not available", failure.ReservationNotAvailable("slot taken"), http.StatusBadRequest, failure.CodeReservationNotAvailable},
		{"unauthorized", failure.Unauthorized("no token"), http.StatusUnauthorized, failure.CodeUnauthorized},
		{"forbidden", failure.Forbidden("no access"), http.StatusForbidden, failure.CodeForbidden},
		{"internal error", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, failure.CodeInternalError},
		{"unimplemented", failure.Unimplemented("Frobnicate"), http.StatusNotImplemented, failure.CodeNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, failure.GetStatus(tt.err))
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestBadRequestNilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetStatusUnknownError(t *testing.T) {
	err := errors.New("plain error")

	assert.Equal(t, http.StatusInternalServerError, failure.GetStatus(err))
	assert.Equal(t, failure.CodeInternalError, failure.GetCode(err))
}

func TestGetStatusWrappedFailure(t *testing.T) {
	err := fmt.Errorf("context: %w", failure.NotFound("restaurant not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetStatus(err))
	assert.Equal(t, failure.CodeNotFound, failure.GetCode(err))
}

func TestFailureErrorMessage(t *testing.T) {
	err := failure.NotFound("reservation not found")

	assert.Equal(t, "reservation not found", err.Error())
}
