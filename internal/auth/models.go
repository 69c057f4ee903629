package auth

import "bookceleb/internal/admins"

// SignupRequest creates an admin account. Signup is invite-only: the request
// must carry the operator's admin code.
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FullName  string `json:"full_name" binding:"required,min=2,max=255"`
	AdminCode string `json:"admin_code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair carries both tokens plus the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	Profile *admins.Profile `json:"profile"`
	Tokens  TokenPair       `json:"tokens"`
}
