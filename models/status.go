package models

import (
	"encoding/json"
	"strings"
)

// FeedbackStatus is the lifecycle status of a feedback item.
type FeedbackStatus string

const (
	StatusPending    FeedbackStatus = "pending"
	StatusApproved   FeedbackStatus = "approved"
	StatusInProgress FeedbackStatus = "in_progress"
	StatusTestflight FeedbackStatus = "testflight"
	StatusCompleted  FeedbackStatus = "completed"
	StatusRejected   FeedbackStatus = "rejected"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []FeedbackStatus{
	StatusPending,
	StatusApproved,
	StatusInProgress,
	StatusTestflight,
	StatusCompleted,
	StatusRejected,
}

// ParseFeedbackStatus parses a wire string into a status. Matching is
// case-insensitive and accepts a few known aliases. Unrecognized values
// return ok=false rather than an error.
func ParseFeedbackStatus(s string) (FeedbackStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "in_progress", "inprogress":
		return StatusInProgress, true
	case "testflight":
		return StatusTestflight, true
	case "completed":
		return StatusCompleted, true
	case "rejected":
		return StatusRejected, true
	}
	return "", false
}

// CanVote reports whether feedback with this status accepts votes.
// Voting is closed once feedback is completed or rejected.
func (s FeedbackStatus) CanVote() bool {
	return s != StatusCompleted && s != StatusRejected
}

// DisplayName returns a human-readable name for the status.
func (s FeedbackStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusInProgress:
		return "In Progress"
	case StatusTestflight:
		return "TestFlight"
	case StatusCompleted:
		return "Completed"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

func (s FeedbackStatus) String() string { return string(s) }

func (s FeedbackStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON decodes a status from its wire string. Unknown values
// decode to the zero value so that new server-side statuses never break
// older clients.
func (s *FeedbackStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _ := ParseFeedbackStatus(raw)
	*s = parsed
	return nil
}
