package auth

// RegisterRequest carries a new account signup. Farmer-only fields are
// optional and ignored for customers.
type RegisterRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=120"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Role           string  `json:"role" validate:"required,oneof=customer farmer"`
	Phone          *string `json:"phone,omitempty"`
	FarmLocation   *string `json:"farm_location,omitempty"`
	CitizenshipDoc *string `json:"citizenship_doc,omitempty"`
}

// LoginRequest carries a credential exchange attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser is the token-holder summary returned alongside a JWT.
type SessionUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

// AuthResponse is the payload for register, login and verify-token.
type AuthResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
