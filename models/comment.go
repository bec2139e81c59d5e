package models

// Comment represents a comment attached to a feedback item.
type Comment struct {
	ID         string `json:"id"`
	FeedbackID string `json:"feedback_id"`
	Content    string `json:"content"`
	UserID     string `json:"user_id,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	IsOfficial bool   `json:"is_official"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// CreateCommentRequest is the payload for posting a comment.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
}
