package models

// SdkUser represents a registered SDK user.
type SdkUser struct {
	ID         string            `json:"id"`
	Email      string            `json:"email,omitempty"`
	Name       string            `json:"name,omitempty"`
	ExternalID string            `json:"external_id,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  string            `json:"created_at,omitempty"`
}

// RegisterUserRequest is the payload for registering a user.
type RegisterUserRequest struct {
	Email      string            `json:"email,omitempty"`
	Name       string            `json:"name,omitempty"`
	ExternalID string            `json:"external_id,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}
