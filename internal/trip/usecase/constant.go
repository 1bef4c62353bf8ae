package usecase

import "trip-planner/internal/model"

// Fallback destination when the reply cannot be parsed.
const (
	DefaultCity = "Bhubaneswar"
	DefaultDays = 3
)

const parsePromptTemplate = "Extract city and days from this input:\n'%s'\nReply like:\nCity: <city>\nDays: <number>"

const (
	cityLabel = "City:"
	daysLabel = "Days:"
)

// Fallback reasons.
const (
	reasonLLMFailed      = "llm call failed"
	reasonCityMissing    = "city missing from reply"
	reasonDaysMissing    = "days missing from reply"
	reasonDaysNotNumeric = "days value is not a number"
)

type category struct {
	key    string
	phrase string
}

// categories are searched in parallel for every destination.
var categories = []category{
	{key: model.CategorySpots, phrase: "famous tourist attractions"},
	{key: model.CategoryFood, phrase: "best street food places"},
	{key: model.CategoryEvents, phrase: "upcoming local events and festivals"},
}

// daySlots are the fixed time-of-day sections of every itinerary day.
var daySlots = []string{
	"🌄 Morning (7 - 10am)",
	"🍽️ Brunch/Lunch (10am - 1pm)",
	"🏛️ Afternoon (1pm - 5pm)",
	"🌇 Evening (5pm - 8pm)",
	"🌃 Night (8pm - 12am)",
}

const bannerTemplate = "\nHey there! Planning a fantastic %d-day trip to **%s** for you! Get ready for some amazing experiences. 😎\n\n" +
	"Here's a detailed itinerary, blending famous spots, delicious street food, and exciting local events. " +
	"Below are the key places with direct links to Google Maps for your convenience:\n\n"

const signOff = "\n\n--- \n\n**Aur chahiye toh message kardena! Happy travels! 😁**"
