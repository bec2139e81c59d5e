package models

import (
	"encoding/json"
	"testing"
)

func TestFeedbackWithVote(t *testing.T) {
	original := Feedback{ID: "1", HasVoted: false, VoteCount: 5}
	updated := original.WithVote(true, 6)

	if !updated.HasVoted || updated.VoteCount != 6 {
		t.Errorf("WithVote = (%v, %d), want (true, 6)", updated.HasVoted, updated.VoteCount)
	}
	if original.HasVoted || original.VoteCount != 5 {
		t.Error("WithVote mutated the original value")
	}
}

func TestFeedbackWithCommentCount(t *testing.T) {
	updated := Feedback{ID: "1", CommentCount: 2}.WithCommentCount(3)
	if updated.CommentCount != 3 {
		t.Errorf("CommentCount = %d, want 3", updated.CommentCount)
	}
}

func TestFeedbackWithStatus(t *testing.T) {
	updated := Feedback{ID: "1", Status: StatusPending}.WithStatus(StatusApproved)
	if updated.Status != StatusApproved {
		t.Errorf("Status = %q, want %q", updated.Status, StatusApproved)
	}
}

func TestFeedbackCanVote(t *testing.T) {
	if (Feedback{Status: StatusCompleted}).CanVote() {
		t.Error("completed feedback should not accept votes")
	}
	if !(Feedback{Status: StatusPending}).CanVote() {
		t.Error("pending feedback should accept votes")
	}
}

func TestListFeedbackOptionsQueryParams(t *testing.T) {
	tests := []struct {
		name string
		opts ListFeedbackOptions
		want map[string]string
	}{
		{
			name: "empty",
			opts: ListFeedbackOptions{},
			want: map[string]string{},
		},
		{
			name: "status only",
			opts: ListFeedbackOptions{Status: StatusApproved},
			want: map[string]string{"status": "approved"},
		},
		{
			name: "all set",
			opts: ListFeedbackOptions{
				Status:   StatusInProgress,
				Category: CategoryBugReport,
				Page:     2,
				PerPage:  25,
			},
			want: map[string]string{
				"status":   "in_progress",
				"category": "bug_report",
				"page":     "2",
				"per_page": "25",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.opts.QueryParams()
			if len(q) != len(tt.want) {
				t.Errorf("got %d params, want %d: %v", len(q), len(tt.want), q)
			}
			for key, want := range tt.want {
				if got := q.Get(key); got != want {
					t.Errorf("param %s = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestFeedbackDecodePreservesOrderAndIgnoresUnknown(t *testing.T) {
	body := `[
		{"id": "b", "title": "second", "status": "approved", "category": "bug_report", "vote_count": 1, "has_voted": false, "comment_count": 0, "created_at": "2025-01-02", "rank": 12},
		{"id": "a", "title": "first", "status": "pending", "category": "other", "vote_count": 9, "has_voted": true, "comment_count": 3, "created_at": "2025-01-01"}
	]`

	var items []Feedback
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("server order not preserved: %s, %s", items[0].ID, items[1].ID)
	}
	if items[0].Status != StatusApproved || items[1].Category != CategoryOther {
		t.Errorf("enum fields decoded wrong: %q, %q", items[0].Status, items[1].Category)
	}
	if !items[1].HasVoted || items[1].VoteCount != 9 {
		t.Errorf("vote state decoded wrong: %v, %d", items[1].HasVoted, items[1].VoteCount)
	}
}
