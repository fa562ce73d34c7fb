package dto

import "time"

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleCallbackRequest carries the ID token a frontend obtained from Google.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse returns the issued access token. The refresh token travels in
// an HTTP-only cookie, not in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
