package usecase

import (
	"context"
	"fmt"
	"strings"

	"trip-planner/internal/model"
	"trip-planner/pkg/llmprovider"
	"trip-planner/pkg/mapslink"
)

// Synthesize asks the model for the day-by-day plan and wraps it in the banner and sign-off.
// The model output is not validated.
func (uc *implUseCase) Synthesize(ctx context.Context, location string, days int, e model.Enrichment) (string, error) {
	prompt := buildItineraryPrompt(location, days, e)

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(prompt, uc.cfg.Temperature))
	if err != nil {
		return "", fmt.Errorf("generate itinerary: %w", err)
	}

	return banner(location, days) + resp.Text() + signOff, nil
}

func banner(location string, days int) string {
	return fmt.Sprintf(bannerTemplate, days, location)
}

func buildItineraryPrompt(location string, days int, e model.Enrichment) string {
	spots := e[model.CategorySpots]
	food := e[model.CategoryFood]
	events := e[model.CategoryEvents]

	var sb strings.Builder

	fmt.Fprintf(&sb, "\nBased on the following data for %s and %d days:\n\n", location, days)
	fmt.Fprintf(&sb, "Tourist Spots with Links:\n%s\n", spots)
	fmt.Fprintf(&sb, "Street Food with Links:\n%s\n", food)
	fmt.Fprintf(&sb, "Events with Links:\n%s\n\n", events)

	sb.WriteString("**Rules for Jolly Guide:**\n")
	sb.WriteString("Language: Talk in Hinglish (e.g. 'bhai sun meri baat', 'bhuk lag rahi hai?', 'chalte hain', 'mazedaar', " +
		"'aur kya opinion hai tera', 'yaha chal maja ayega', 'itna ghum ke bhuk lag gayi hogi, yahan khale').\n")
	sb.WriteString("Tone: Enthusiastic, conversational, friendly and full of energy. Use emojis and exclamation marks! " +
		"Talk like a long-time friend, be open, a little cheeky is fine.\n")
	sb.WriteString("Conciseness: Keep each entry for a place or food spot small and to the point, and always add street food.\n\n")

	fmt.Fprintf(&sb, "Please generate a detailed %d-day itinerary for %s.\n\n", days, location)

	sb.WriteString("For every location you suggest in the daily itinerary (Morning, Brunch, Afternoon, Evening, Night), " +
		"if it's a specific place like a temple, beach, or landmark, embed a Google Maps search link directly within its mention.\n")
	fmt.Fprintf(&sb, "The format for these links should be: '[See on Maps](%sPLACE_NAME+CITY)'\n", mapslink.SearchBase)
	fmt.Fprintf(&sb, "For example, for \"Dudhsagar Falls\", it should be '%s'.\n",
		mapslink.Markdown("Dudhsagar Falls", mapslink.SearchURL("Dudhsagar Falls", "Goa")))
	sb.WriteString("Replace PLACE_NAME with the actual name of the place and CITY with the trip's location.\n\n")

	sb.WriteString("Format each day clearly with these sections:\nDay X:\n")
	for _, slot := range daySlots {
		fmt.Fprintf(&sb, "  %s:--->\n", slot)
	}
	sb.WriteString("\nMake sure to integrate the tourist spots, street food, and events naturally into the daily schedule.\n")
	sb.WriteString("Use emojis where appropriate to make it fun.\n\n")

	fmt.Fprintf(&sb, "---\n**🗺️ Tourist Spots:**\n%s\n", spots)
	fmt.Fprintf(&sb, "---\n**🍔 Street Food Delights:**\n%s\n", food)
	fmt.Fprintf(&sb, "---\n**🎉 Local Events & Happenings:**\n%s\n", events)
	sb.WriteString("---\nChaliye Shuru!\n")

	return sb.String()
}
