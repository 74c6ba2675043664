package dto

import "github.com/spec-kit/ppe-dashboard/internal/domain"

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse reports the current session state to the views.
type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	Loading         bool         `json:"loading"`
}
