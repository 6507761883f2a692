package request

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer vendor"`
}

// LoginRequest deliberately skips the email format check: any non-empty
// string goes through the encrypt-and-lookup path and surfaces as
// "User not found" rather than a format error.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
