package models

// TrackedEvent is a fire-and-forget telemetry record.
type TrackedEvent struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
	UserID     string            `json:"user_id,omitempty"`
	Timestamp  string            `json:"timestamp,omitempty"`
}

// TrackEventResponse is the server acknowledgement for a tracked event.
type TrackEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id,omitempty"`
}
