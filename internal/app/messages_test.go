package app

import (
	"errors"
	"fmt"
	"testing"

	"crown-defense/internal/placement"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrInsufficientFunds, "Not enough money!"},
		{fmt.Errorf("place: %w", ErrBuildLocked), "Wait for the wave to end!"},
		{ErrWaveActive, "Wait for the wave to end!"},
		{ErrNoTowerSelected, "Select a tower first"},
		{&placement.Error{Reason: placement.OnPath}, "Invalid position: on the path"},
		{&placement.Error{Reason: placement.OnObjective}, "Invalid position: too close to the crown"},
		{&placement.Error{Reason: placement.Overlap}, "Invalid position: overlaps a tower"},
		{&placement.Error{Reason: placement.OutOfBounds}, "Invalid position: outside the field"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err))
	}
}
