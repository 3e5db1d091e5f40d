package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, true},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"pending to seated", model.StatusPending, model.StatusSeated, false},
		{"pending to completed", model.StatusPending, model.StatusCompleted, false},
		{"confirmed to seated", model.StatusConfirmed, model.StatusSeated, true},
		{"confirmed to no_show", model.StatusConfirmed, model.StatusNoShow, true},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, true},
		{"confirmed to completed", model.StatusConfirmed, model.StatusCompleted, false},
		{"seated to completed", model.StatusSeated, model.StatusCompleted, true},
		{"seated to cancelled", model.StatusSeated, model.StatusCancelled, false},
		{"completed is terminal", model.StatusCompleted, model.StatusConfirmed, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusPending, false},
		{"no_show is terminal", model.StatusNoShow, model.StatusConfirmed, false},
		{"unknown status", "unknown", model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, model.IsTerminal(model.StatusCompleted))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
	assert.True(t, model.IsTerminal(model.StatusNoShow))
	assert.False(t, model.IsTerminal(model.StatusPending))
	assert.False(t, model.IsTerminal(model.StatusConfirmed))
	assert.False(t, model.IsTerminal(model.StatusSeated))
}

func TestActiveStatuses(t *testing.T) {
	active := model.ActiveStatuses()

	assert.Equal(t, []string{model.StatusPending, model.StatusConfirmed, model.StatusSeated}, active)

	for _, status := range active {
		assert.False(t, model.IsTerminal(status))
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusSeated,
		model.StatusCompleted,
		model.StatusCancelled,
		model.StatusNoShow,
	} {
		assert.True(t, model.ValidStatus(status))
	}

	assert.False(t, model.ValidStatus("unknown"))
	assert.False(t, model.ValidStatus(""))
}
