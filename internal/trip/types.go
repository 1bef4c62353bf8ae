package trip

import (
	"strings"
	"unicode/utf8"
)

// MaxInputLength is the default per-message limit enforced at the delivery edge.
const MaxInputLength = 500

// PlanInput is the input for a single planning turn.
type PlanInput struct {
	Text string // latest user message, e.g. "Plan a 3 day trip to Goa"
}

// PlanOutput is the result of a planning turn.
type PlanOutput struct {
	Itinerary       string
	Location        string
	Days            int
	FallbackApplied bool // destination came from the configured defaults
}

// ValidateInput rejects blank messages and messages longer than maxLen characters.
// maxLen <= 0 disables the length check.
func ValidateInput(text string, maxLen int) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	if maxLen > 0 && utf8.RuneCountInString(text) > maxLen {
		return ErrInputTooLong
	}
	return nil
}
