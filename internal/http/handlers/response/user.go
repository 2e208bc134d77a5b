package response

import (
	"authsvc/internal/core/domain/user"
	"time"
)

// UserResponse is the caller-visible projection of a credential record.
// The password hash and any pending reset token never leave the service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        int64(u.ID),
		Name:      u.Name,
		Email:     string(u.Email),
		CreatedAt: u.CreatedAt,
	}
}
