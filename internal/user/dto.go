package user

import "time"

// UpsertUserRequest represents the request body for creating or updating a user
type UpsertUserRequest struct {
	ExternalID string `json:"external_id" validate:"required,max=100"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Gender     string `json:"gender" validate:"required,oneof=male female"`
	IsReal     *bool  `json:"is_real,omitempty"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	IsReal     bool   `json:"is_real"`
	CreatedAt  string `json:"created_at"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Name:       u.Name,
		Gender:     u.Gender,
		IsReal:     u.IsReal,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
