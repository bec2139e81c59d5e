package models

import (
	"net/url"
	"strconv"
)

// Feedback represents a single feedback item as delivered by the server.
// Values are treated as immutable; the With* helpers return updated copies.
type Feedback struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Status       FeedbackStatus   `json:"status"`
	Category     FeedbackCategory `json:"category"`
	VoteCount    int              `json:"vote_count"`
	HasVoted     bool             `json:"has_voted"`
	CommentCount int              `json:"comment_count"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at,omitempty"`
	UserID       string           `json:"user_id,omitempty"`
	Email        string           `json:"email,omitempty"`
}

// CanVote reports whether this feedback accepts votes, based on its status.
func (f Feedback) CanVote() bool { return f.Status.CanVote() }

// WithVote returns a copy with updated vote state.
func (f Feedback) WithVote(hasVoted bool, voteCount int) Feedback {
	f.HasVoted = hasVoted
	f.VoteCount = voteCount
	return f
}

// WithCommentCount returns a copy with an updated comment count.
func (f Feedback) WithCommentCount(count int) Feedback {
	f.CommentCount = count
	return f
}

// WithStatus returns a copy with an updated status.
func (f Feedback) WithStatus(status FeedbackStatus) Feedback {
	f.Status = status
	return f
}

// CreateFeedbackRequest is the payload for submitting new feedback.
type CreateFeedbackRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    FeedbackCategory `json:"category"`
	Email       string           `json:"email,omitempty"`
	UserID      string           `json:"user_id,omitempty"`

	// Mailing list consent, forwarded verbatim to the server.
	SubscribeToMailingList *bool    `json:"subscribeToMailingList,omitempty"`
	MailingListEmailTypes  []string `json:"mailingListEmailTypes,omitempty"`
}

// ListFeedbackOptions filters a feedback listing. Zero values mean "unset".
type ListFeedbackOptions struct {
	Status   FeedbackStatus
	Category FeedbackCategory
	Page     int
	PerPage  int
}

// QueryParams converts the options into URL query parameters.
func (o ListFeedbackOptions) QueryParams() url.Values {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	if o.Category != "" {
		q.Set("category", string(o.Category))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return q
}
