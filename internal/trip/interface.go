package trip

import (
	"context"

	"trip-planner/internal/model"
)

// UseCase defines the business logic interface for the trip domain.
type UseCase interface {
	// PlanTrip runs parse, enrich and synthesize for one user message and returns the itinerary.
	PlanTrip(ctx context.Context, sc model.Scope, input PlanInput) (PlanOutput, error)
}
