package telegram

import (
	"errors"
	"fmt"

	"trip-planner/internal/trip"
)

// errorMessage returns the user-facing reply for a rejected or failed turn.
func (h *handler) errorMessage(err error) string {
	switch {
	case errors.Is(err, trip.ErrInputTooLong):
		return fmt.Sprintf("Input is too long! Please limit your message to %d characters.", h.maxInputLength)
	case errors.Is(err, trip.ErrEmptyInput):
		return helpText
	default:
		return failureText
	}
}
