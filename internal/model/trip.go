package model

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Enrichment categories.
const (
	CategorySpots  = "spots"
	CategoryFood   = "food"
	CategoryEvents = "events"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Destination is the Parser's result.
// FallbackApplied is set when Location and Days are the configured defaults
// rather than values read from the model reply.
type Destination struct {
	Location        string
	Days            int
	FallbackApplied bool
	FallbackReason  string
}

// Enrichment maps a category ("spots", "food", "events") to its formatted search text.
type Enrichment map[string]string

// TripState is the record threaded through parse, enrich and synthesize for a single turn.
// Each stage fills its own fields through a With* method, which returns a new value.
type TripState struct {
	Conversation []Message
	Location     string
	Days         int
	Enrichment   Enrichment
	Final        string
}

// NewTripState seeds a state with a single user message.
func NewTripState(text string) TripState {
	return TripState{
		Conversation: []Message{{Role: RoleUser, Content: text}},
	}
}

// LatestUserMessage returns the content of the last user message, or "".
func (s TripState) LatestUserMessage() string {
	for i := len(s.Conversation) - 1; i >= 0; i-- {
		if s.Conversation[i].Role == RoleUser {
			return s.Conversation[i].Content
		}
	}
	return ""
}

// WithDestination returns a copy of s with Location and Days set.
func (s TripState) WithDestination(d Destination) TripState {
	s.Conversation = cloneMessages(s.Conversation)
	s.Enrichment = s.Enrichment.Clone()
	s.Location = d.Location
	s.Days = d.Days
	return s
}

// WithEnrichment returns a copy of s with Enrichment set.
func (s TripState) WithEnrichment(e Enrichment) TripState {
	s.Conversation = cloneMessages(s.Conversation)
	s.Enrichment = e.Clone()
	return s
}

// WithFinal returns a copy of s with Final set.
func (s TripState) WithFinal(final string) TripState {
	s.Conversation = cloneMessages(s.Conversation)
	s.Enrichment = s.Enrichment.Clone()
	s.Final = final
	return s
}

// Clone returns an independent copy of e.
func (e Enrichment) Clone() Enrichment {
	if e == nil {
		return nil
	}
	out := make(Enrichment, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

func cloneMessages(in []Message) []Message {
	if in == nil {
		return nil
	}
	out := make([]Message, len(in))
	copy(out, in)
	return out
}
