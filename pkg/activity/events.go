package activity

import (
	"strings"
	"time"
)

// VerbValueUpdated identifies events emitted for successful value mutations.
const VerbValueUpdated = "value.updated"

// ValueUpdatedInput describes the fields for a value mutation event.
type ValueUpdatedInput struct {
	Updater    string
	ObjectID   string
	Channel    string
	OldValue   uint64
	NewValue   uint64
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildValueUpdatedEvent constructs a normalized event for a successful update.
// The old value must be captured before the mutation is applied so consumers
// observe the pre-image alongside the new value in a single event.
func BuildValueUpdatedEvent(input ValueUpdatedInput) Event {
	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = "value"
	}
	return Event{
		Verb:       VerbValueUpdated,
		Updater:    strings.TrimSpace(input.Updater),
		ObjectType: "value",
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		OldValue:   input.OldValue,
		NewValue:   input.NewValue,
		Metadata:   cloneMap(input.Metadata),
		OccurredAt: input.OccurredAt,
	}
}
