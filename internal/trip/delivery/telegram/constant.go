package telegram

import "time"

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	// processTimeout bounds one planning turn running in the background.
	processTimeout = 3 * time.Minute
)

const (
	helpText = "*How to use me:*\n\nJust tell me where you want to go and for how many days, e.g.\n`Goa for 3 days` or `Plan a weekend in Jaipur`.\n\n/reset starts a fresh conversation."

	progressText = "App Pani peeke aao thoda, Bana raha hoon akk badhiya itinerary... ⏳"

	resetText = "Chat reset! 🧹"

	failureText = "Arre yaar, something went wrong while planning your trip. Please try again in a bit! 🙏"
)
