package feedbackkit

import (
	"context"
	"net/url"

	"github.com/swiftlydeveloped/feedbackkit-go/apierror"
	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// VotesAPI groups vote operations.
type VotesAPI struct {
	http *transport.Client
}

// VoteOptions carries the optional flags sent with a vote.
type VoteOptions struct {
	// NotifyOnStatusChange opts into email notification when the
	// feedback's status changes.
	NotifyOnStatusChange bool

	// Mailing list consent, forwarded verbatim to the server.
	SubscribeToMailingList *bool
	MailingListEmailTypes  []string
}

type voteRequest struct {
	UserID                 string   `json:"userId"`
	NotifyOnStatusChange   bool     `json:"notifyOnStatusChange"`
	SubscribeToMailingList *bool    `json:"subscribeToMailingList,omitempty"`
	MailingListEmailTypes  []string `json:"mailingListEmailTypes,omitempty"`
}

// Vote casts a vote on a feedback item. It fails locally with a validation
// error, without any HTTP call, when no active user id is set.
func (a *VotesAPI) Vote(ctx context.Context, feedbackID string, opts VoteOptions) (*models.VoteResponse, error) {
	userID := a.http.UserID()
	if userID == "" {
		return nil, apierror.NewValidation("User ID is required for voting")
	}

	req := voteRequest{
		UserID:                 userID,
		NotifyOnStatusChange:   opts.NotifyOnStatusChange,
		SubscribeToMailingList: opts.SubscribeToMailingList,
		MailingListEmailTypes:  opts.MailingListEmailTypes,
	}

	var resp models.VoteResponse
	if err := a.http.Post(ctx, "feedbacks/"+feedbackID+"/votes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Unvote removes the active user's vote from a feedback item. Same local
// precondition as Vote.
func (a *VotesAPI) Unvote(ctx context.Context, feedbackID string) (*models.VoteResponse, error) {
	userID := a.http.UserID()
	if userID == "" {
		return nil, apierror.NewValidation("User ID is required for unvoting")
	}

	query := url.Values{}
	query.Set("user_id", userID)

	var resp models.VoteResponse
	if err := a.http.Delete(ctx, "feedbacks/"+feedbackID+"/votes", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleVote votes or unvotes based on the caller-supplied current state.
// It never inspects any cached state of its own.
func (a *VotesAPI) ToggleVote(ctx context.Context, feedbackID string, hasVoted bool, opts VoteOptions) (*models.VoteResponse, error) {
	if hasVoted {
		return a.Unvote(ctx, feedbackID)
	}
	return a.Vote(ctx, feedbackID, opts)
}
