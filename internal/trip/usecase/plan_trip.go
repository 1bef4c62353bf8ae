package usecase

import (
	"context"
	"fmt"

	"trip-planner/internal/model"
	"trip-planner/internal/trip"
)

// PlanTrip runs parse, enrich and synthesize in order for one user message.
func (uc *implUseCase) PlanTrip(ctx context.Context, sc model.Scope, input trip.PlanInput) (trip.PlanOutput, error) {
	uc.l.Infof(ctx, "PlanTrip: channel=%s user=%s session=%s", sc.Channel, sc.UserID, sc.SessionID)

	state := model.NewTripState(input.Text)

	dest := uc.Parse(ctx, state.LatestUserMessage())
	state = state.WithDestination(dest)

	state = state.WithEnrichment(uc.Enrich(ctx, state.Location))

	final, err := uc.Synthesize(ctx, state.Location, state.Days, state.Enrichment)
	if err != nil {
		uc.l.Errorf(ctx, "PlanTrip: location=%q days=%d: %v", state.Location, state.Days, err)
		return trip.PlanOutput{}, fmt.Errorf("plan trip: %w", err)
	}
	state = state.WithFinal(final)

	return trip.PlanOutput{
		Itinerary:       state.Final,
		Location:        state.Location,
		Days:            state.Days,
		FallbackApplied: dest.FallbackApplied,
	}, nil
}
