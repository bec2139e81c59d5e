package feedbackkit

import (
	"context"
	"net/url"

	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// FeedbackAPI groups feedback operations.
type FeedbackAPI struct {
	http *transport.Client
}

// List returns feedback items matching the options, in server-defined
// order. The active user id is always sent so the server can compute
// per-item vote state.
func (a *FeedbackAPI) List(ctx context.Context, opts models.ListFeedbackOptions) ([]models.Feedback, error) {
	query := opts.QueryParams()
	if userID := a.http.UserID(); userID != "" {
		query.Set("user_id", userID)
	}

	var items []models.Feedback
	if err := a.http.Get(ctx, "feedbacks", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns a single feedback item by id.
func (a *FeedbackAPI) Get(ctx context.Context, id string) (*models.Feedback, error) {
	query := url.Values{}
	if userID := a.http.UserID(); userID != "" {
		query.Set("user_id", userID)
	}

	var item models.Feedback
	if err := a.http.Get(ctx, "feedbacks/"+id, query, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create submits new feedback. The active user id is injected when the
// request doesn't carry one.
func (a *FeedbackAPI) Create(ctx context.Context, req models.CreateFeedbackRequest) (*models.Feedback, error) {
	if req.UserID == "" {
		req.UserID = a.http.UserID()
	}

	var created models.Feedback
	if err := a.http.Post(ctx, "feedbacks", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
