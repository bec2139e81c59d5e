package models

import (
	"encoding/json"
	"testing"
)

func TestParseFeedbackStatusRoundTrip(t *testing.T) {
	for _, status := range Statuses {
		parsed, ok := ParseFeedbackStatus(status.String())
		if !ok {
			t.Errorf("ParseFeedbackStatus(%q) not ok", status)
		}
		if parsed != status {
			t.Errorf("round trip of %q: got %q", status, parsed)
		}
	}
}

func TestParseFeedbackStatus(t *testing.T) {
	tests := []struct {
		input string
		want  FeedbackStatus
		ok    bool
	}{
		{"pending", StatusPending, true},
		{"PENDING", StatusPending, true},
		{"In_Progress", StatusInProgress, true},
		{"inprogress", StatusInProgress, true},
		{"testflight", StatusTestflight, true},
		{"  completed  ", StatusCompleted, true},
		{"rejected", StatusRejected, true},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFeedbackStatus(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFeedbackStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFeedbackStatusCanVote(t *testing.T) {
	tests := []struct {
		status  FeedbackStatus
		canVote bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusInProgress, true},
		{StatusTestflight, true},
		{StatusCompleted, false},
		{StatusRejected, false},
	}

	for _, tt := range tests {
		if got := tt.status.CanVote(); got != tt.canVote {
			t.Errorf("%s.CanVote() = %v, want %v", tt.status, got, tt.canVote)
		}
	}
}

func TestFeedbackStatusJSON(t *testing.T) {
	for _, status := range Statuses {
		data, err := json.Marshal(status)
		if err != nil {
			t.Fatalf("marshal %q: %v", status, err)
		}

		var decoded FeedbackStatus
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if decoded != status {
			t.Errorf("JSON round trip of %q: got %q", status, decoded)
		}
	}
}

func TestFeedbackStatusJSONUnknown(t *testing.T) {
	var decoded FeedbackStatus
	if err := json.Unmarshal([]byte(`"shipped"`), &decoded); err != nil {
		t.Fatalf("unmarshal unknown status: %v", err)
	}
	if decoded != "" {
		t.Errorf("unknown status decoded to %q, want zero value", decoded)
	}
}

func TestFeedbackStatusDisplayName(t *testing.T) {
	if got := StatusInProgress.DisplayName(); got != "In Progress" {
		t.Errorf("DisplayName = %q, want %q", got, "In Progress")
	}
	if got := StatusTestflight.DisplayName(); got != "TestFlight" {
		t.Errorf("DisplayName = %q, want %q", got, "TestFlight")
	}
}
