package response

import (
	"storefront/internal/data/entity"
)

// UserResponse is the public view of an account. The password hash never
// leaves the service layer; Email is the decrypted plaintext.
type UserResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

func UserToResponse(user *entity.User, plainEmail string) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: plainEmail,
		Role:  user.Role,
	}
}
