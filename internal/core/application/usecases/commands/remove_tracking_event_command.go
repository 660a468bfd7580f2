package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRemoveTrackingEventCommandIsNotConstructed = errors.New(
	"RemoveTrackingEventCommand must be created via NewRemoveTrackingEventCommand constructor",
)

// RemoveTrackingEventCommand represents a request to delete a tracking event
// that was recorded by mistake.
type RemoveTrackingEventCommand struct { //nolint:recvcheck //using for validation
	eventID kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveTrackingEventCommand creates a command to delete a tracking event
// by its identifier.
func NewRemoveTrackingEventCommand(eventID kernel.ID) (RemoveTrackingEventCommand, error) {
	if err := eventID.Validate(); err != nil {
		return RemoveTrackingEventCommand{}, err
	}

	return RemoveTrackingEventCommand{
		eventID: eventID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTrackingEventCommandIsNotConstructed)
}

// EventID returns the identifier of the event to delete.
func (c RemoveTrackingEventCommand) EventID() kernel.ID {
	return c.eventID
}
