package feedbackkit

import (
	"context"

	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// EventsAPI groups event tracking operations.
type EventsAPI struct {
	http *transport.Client
}

// Track records a telemetry event. The active user id is injected when the
// event doesn't carry one.
func (a *EventsAPI) Track(ctx context.Context, event models.TrackedEvent) (*models.TrackEventResponse, error) {
	if event.UserID == "" {
		event.UserID = a.http.UserID()
	}

	var resp models.TrackEventResponse
	if err := a.http.Post(ctx, "events/track", event, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
