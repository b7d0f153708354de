package events

// DefaultEventPoints is the starter point table seeded into an empty store
var DefaultEventPoints = map[string]int{
	"CW1": 2,
	"CW2": 3,
	"CW3": 4,
	"EPB": 3,
	"PBS": 1,
}

// GetPointsInput contains parameters for looking up an event's point value
type GetPointsInput struct {
	EventType string
}

// GetPointsOutput contains the result of looking up an event's point value
type GetPointsOutput struct {
	Points int
}

// SetPointsInput contains parameters for setting an event's point value
type SetPointsInput struct {
	EventType string
	Points    int
}

// ListEventsInput contains parameters for listing the event table
type ListEventsInput struct{}

// ListEventsOutput contains the full event-type point table
type ListEventsOutput struct {
	Events map[string]int
}
