package domain

import "testing"

func TestProfileForUsername(t *testing.T) {
	tests := []struct {
		username        string
		wantRole        Role
		wantDisplayName string
		wantEmail       string
		wantInitial     string
	}{
		{"admin", RoleAdmin, "Admin User", "admin@miningcompany.com", "A"},
		{"manager", RoleManager, "Safety Manager", "manager@miningcompany.com", "M"},
		{"jsmith", RoleManager, "Safety Manager", "jsmith@miningcompany.com", "J"},
		{"Administrator", RoleManager, "Safety Manager", "Administrator@miningcompany.com", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			user := ProfileForUsername(tt.username)
			if user.Role != tt.wantRole {
				t.Fatalf("role = %q, want %q", user.Role, tt.wantRole)
			}
			if user.DisplayName != tt.wantDisplayName {
				t.Fatalf("display name = %q, want %q", user.DisplayName, tt.wantDisplayName)
			}
			if user.Email != tt.wantEmail {
				t.Fatalf("email = %q, want %q", user.Email, tt.wantEmail)
			}
			if user.AvatarInitial != tt.wantInitial {
				t.Fatalf("avatar initial = %q, want %q", user.AvatarInitial, tt.wantInitial)
			}
			if user.Username != tt.username {
				t.Fatalf("username = %q, want %q", user.Username, tt.username)
			}
			if user.Department != "Safety Department" {
				t.Fatalf("department = %q", user.Department)
			}
		})
	}
}

func TestProfileForUsername_Deterministic(t *testing.T) {
	a := ProfileForUsername("foreman")
	b := ProfileForUsername("foreman")
	if a != b {
		t.Fatalf("profiles differ: %+v vs %+v", a, b)
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "manager"} {
		if _, err := ParseRole(valid); err != nil {
			t.Fatalf("ParseRole(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "root", "ADMIN", "supervisor"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Fatalf("ParseRole(%q) accepted", invalid)
		}
	}
}
