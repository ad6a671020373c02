package dto

import "github.com/muktarbdulkader/campus-connector/internal/app/models"

// SignupRequest is the payload for creating an account. Email format and the
// minimum password length are enforced at binding time.
type SignupRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"fullName" binding:"required"`
	University string `json:"university"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Skills     string `json:"skills"`
}

// SignupResponse confirms account creation.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest is the payload for issuing an access token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the caller's profile.
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresIn   int             `json:"expiresIn"`
	User        *models.Profile `json:"user"`
}

// UpdateProfileRequest carries partial profile updates; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	FullName   *string `json:"fullName"`
	University *string `json:"university"`
	Department *string `json:"department"`
	Year       *string `json:"year"`
	Skills     *string `json:"skills"`
}
