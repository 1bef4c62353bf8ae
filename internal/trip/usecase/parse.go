package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"trip-planner/internal/model"
	"trip-planner/pkg/llmprovider"
)

// Parse asks the model for the city and trip length in text.
// It never fails: unusable replies yield the configured default destination.
func (uc *implUseCase) Parse(ctx context.Context, text string) model.Destination {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(fmt.Sprintf(parsePromptTemplate, text), uc.cfg.Temperature))
	if err != nil {
		return uc.fallbackDestination(ctx, fmt.Sprintf("%s: %v", reasonLLMFailed, err))
	}

	city, days, reason := parseDestinationReply(resp.Text())
	if reason != "" {
		return uc.fallbackDestination(ctx, reason)
	}

	uc.l.Infof(ctx, "Parse: location=%q days=%d", city, days)
	return model.Destination{Location: city, Days: days}
}

func (uc *implUseCase) fallbackDestination(ctx context.Context, reason string) model.Destination {
	uc.l.Warnf(ctx, "Parse: could not extract destination (%s), using %s for %d days", reason, uc.cfg.DefaultCity, uc.cfg.DefaultDays)
	return model.Destination{
		Location:        uc.cfg.DefaultCity,
		Days:            uc.cfg.DefaultDays,
		FallbackApplied: true,
		FallbackReason:  reason,
	}
}

// parseDestinationReply reads "City:" and "Days:" lines. A non-empty reason means the reply is unusable.
func parseDestinationReply(reply string) (city string, days int, reason string) {
	var daysValue string
	var cityFound, daysFound bool

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		switch {
		case strings.Contains(line, cityLabel):
			city = valueAfterColon(line)
			cityFound = true
		case strings.Contains(line, daysLabel):
			daysValue = valueAfterColon(line)
			daysFound = true
		}
	}

	if !cityFound || city == "" {
		return "", 0, reasonCityMissing
	}
	if !daysFound {
		return "", 0, reasonDaysMissing
	}
	if !isDigits(daysValue) {
		return "", 0, reasonDaysNotNumeric
	}

	days, err := strconv.Atoi(daysValue)
	if err != nil {
		return "", 0, reasonDaysNotNumeric
	}
	return city, days, ""
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return strings.TrimSpace(after)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
