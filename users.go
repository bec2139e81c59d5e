package feedbackkit

import (
	"context"

	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// UsersAPI groups user operations.
type UsersAPI struct {
	http *transport.Client
}

// Register registers a new SDK user.
func (a *UsersAPI) Register(ctx context.Context, req models.RegisterUserRequest) (*models.SdkUser, error) {
	var user models.SdkUser
	if err := a.http.Post(ctx, "users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the active user's profile. It returns (nil, nil)
// without making a call when no user id is set.
func (a *UsersAPI) CurrentUser(ctx context.Context) (*models.SdkUser, error) {
	userID := a.http.UserID()
	if userID == "" {
		return nil, nil
	}

	var user models.SdkUser
	if err := a.http.Get(ctx, "users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
