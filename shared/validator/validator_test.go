package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared/failure"
	"mesa/shared/validator"
)

type availabilityRequest struct {
	ReservationDate string `json:"reservationDate" validate:"required,dateonly"`
	ReservationTime string `json:"reservationTime" validate:"required,hhmm"`
	PartySize       int    `json:"partySize"       validate:"required,min=1,max=20"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"reservationDate":"2026-09-10","reservationTime":"19:00","partySize":4}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"reservationDate":`,
			wantErr: true,
		},
		{
			name:    "invalid date format",
			body:    `{"reservationDate":"10/09/2026","reservationTime":"19:00","partySize":4}`,
			wantErr: true,
		},
		{
			name:    "invalid time format",
			body:    `{"reservationDate":"2026-09-10","reservationTime":"7pm","partySize":4}`,
			wantErr: true,
		},
		{
			name:    "party size out of range",
			body:    `{"reservationDate":"2026-09-10","reservationTime":"19:00","partySize":21}`,
			wantErr: true,
		},
		{
			name:    "missing required fields",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := availabilityRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetStatus(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("19:30", "hhmm"))
	assert.Error(t, validator.ValidateVar("25:99", "hhmm"))
	assert.NoError(t, validator.ValidateVar("2026-09-10", "dateonly"))
	assert.Error(t, validator.ValidateVar("2026-13-40", "dateonly"))
}

func TestValidateStruct(t *testing.T) {
	valid := availabilityRequest{
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
		PartySize:       2,
	}

	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := availabilityRequest{
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
	}

	assert.Error(t, validator.ValidateStruct(&invalid))
}
