package domain

import (
	"unicode"
	"unicode/utf8"
)

// ProfileForUsername derives the operator profile from the username alone.
// There is no backing identity store; "admin" is the only username that
// receives the admin role, every other username maps to a safety manager.
func ProfileForUsername(username string) User {
	role := RoleManager
	displayName := "Safety Manager"
	if username == "admin" {
		role = RoleAdmin
		displayName = "Admin User"
	}

	return User{
		ID:            username,
		Username:      username,
		DisplayName:   displayName,
		Role:          role,
		Email:         username + "@miningcompany.com",
		Department:    "Safety Department",
		AvatarInitial: avatarInitial(username),
	}
}

func avatarInitial(username string) string {
	if username == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(username)
	return string(unicode.ToUpper(r))
}
