package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"trip-planner/internal/model"
	"trip-planner/internal/trip"
)

func stubItinerary(days int) string {
	var sb strings.Builder
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&sb, "Day %d:\n", d)
		for _, slot := range daySlots {
			fmt.Fprintf(&sb, "  %s:---> Goa fun\n", slot)
		}
	}
	return sb.String()
}

func TestPlanTrip_EndToEnd(t *testing.T) {
	llm := &fakeLLM{parseReply: "City: Goa\nDays: 3", body: stubItinerary(3)}
	searcher := &fakeSearcher{}
	uc, _ := newTestUseCase(llm, searcher)

	out, err := uc.PlanTrip(context.Background(), model.Scope{UserID: "u1", Channel: model.ChannelCLI},
		trip.PlanInput{Text: "Plan a 3 day trip to Goa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Location != "Goa" || out.Days != 3 || out.FallbackApplied {
		t.Errorf("unexpected destination: %+v", out)
	}
	if !strings.Contains(out.Itinerary, "Goa") {
		t.Error("itinerary missing destination")
	}
	if n := strings.Count(out.Itinerary, "Day "); n != 3 {
		t.Errorf("expected 3 day headers, got %d", n)
	}
	for _, slot := range daySlots {
		if n := strings.Count(out.Itinerary, slot); n != 3 {
			t.Errorf("expected slot %q 3 times, got %d", slot, n)
		}
	}

	bannerAt := strings.Index(out.Itinerary, banner("Goa", 3))
	bodyAt := strings.Index(out.Itinerary, "Day 1:")
	signOffAt := strings.LastIndex(out.Itinerary, signOff)
	if !(bannerAt == 0 && bodyAt > bannerAt && signOffAt > bodyAt) {
		t.Errorf("unexpected ordering: banner=%d body=%d signoff=%d", bannerAt, bodyAt, signOffAt)
	}
	if !strings.HasSuffix(out.Itinerary, signOff) {
		t.Error("itinerary must end with sign-off")
	}

	if len(searcher.calls) != 3 {
		t.Errorf("expected 3 searches, got %d", len(searcher.calls))
	}
	for _, c := range searcher.calls {
		if !strings.HasSuffix(c, "|Goa") {
			t.Errorf("search used wrong location: %s", c)
		}
	}
	if len(llm.prompts) != 2 {
		t.Errorf("expected 2 model calls, got %d", len(llm.prompts))
	}
}

func TestPlanTrip_ParseFallbackStillPlans(t *testing.T) {
	llm := &fakeLLM{parseReply: "I don't know", body: "BODY"}
	searcher := &fakeSearcher{}
	uc, _ := newTestUseCase(llm, searcher)

	out, err := uc.PlanTrip(context.Background(), model.Scope{}, trip.PlanInput{Text: "surprise me"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.FallbackApplied || out.Location != DefaultCity || out.Days != DefaultDays {
		t.Errorf("expected fallback destination, got %+v", out)
	}
	if out.Itinerary != banner(DefaultCity, DefaultDays)+"BODY"+signOff {
		t.Errorf("unexpected itinerary %q", out.Itinerary)
	}
}

func TestPlanTrip_SynthesisErrorPropagates(t *testing.T) {
	cause := errors.New("provider 500")
	uc, _ := newTestUseCase(&fakeLLM{parseReply: "City: Goa\nDays: 2", bodyErr: cause}, &fakeSearcher{})

	out, err := uc.PlanTrip(context.Background(), model.Scope{}, trip.PlanInput{Text: "Goa 2 days"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if out.Itinerary != "" {
		t.Errorf("expected empty output, got %q", out.Itinerary)
	}
}
