package domain

import "fmt"

// Role enumerates dashboard operator roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// ParseRole validates a role token against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is the domain model for a signed-in dashboard operator.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	Role          Role   `json:"role"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	AvatarInitial string `json:"avatar_initial"`
}
