package feedbackkit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// CommentsAPI groups comment operations.
type CommentsAPI struct {
	http *transport.Client
}

// List returns the comments on a feedback item. page and perPage are
// optional; zero means server default.
func (a *CommentsAPI) List(ctx context.Context, feedbackID string, page, perPage int) ([]models.Comment, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}

	var comments []models.Comment
	if err := a.http.Get(ctx, "feedbacks/"+feedbackID+"/comments", query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create posts a comment on a feedback item. The active user id is injected
// when the request doesn't carry one.
func (a *CommentsAPI) Create(ctx context.Context, feedbackID string, req models.CreateCommentRequest) (*models.Comment, error) {
	if req.UserID == "" {
		req.UserID = a.http.UserID()
	}

	var created models.Comment
	if err := a.http.Post(ctx, "feedbacks/"+feedbackID+"/comments", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
