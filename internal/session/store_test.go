package session

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/session/storage"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

const recordKey = "ppe_user"

func newTestStore(t *testing.T, recorder storage.Recorder) *Store {
	t.Helper()
	if recorder == nil {
		recorder = storage.NewMemoryRecorder()
	}
	return NewStore(recorder, recordKey, zap.NewNop(), nil)
}

func TestLogin_NonEmptyPairAlwaysSucceeds(t *testing.T) {
	tests := []struct {
		username string
		wantRole domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"manager", domain.RoleManager},
		{"anyone", domain.RoleManager},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			store := newTestStore(t, nil)
			store.Restore(context.Background())

			user, err := store.Login(context.Background(), tt.username, "x")
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if user.Role != tt.wantRole {
				t.Fatalf("role = %q, want %q", user.Role, tt.wantRole)
			}

			state := store.Snapshot()
			if !state.IsAuthenticated || state.User == nil {
				t.Fatalf("expected authenticated state, got %+v", state)
			}
			if state.User.Username != tt.username {
				t.Fatalf("username = %q, want %q", state.User.Username, tt.username)
			}
		})
	}
}

func TestLogin_EmptyInputRejected(t *testing.T) {
	tests := []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "admin", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := storage.NewMemoryRecorder()
			store := newTestStore(t, recorder)
			store.Restore(context.Background())

			if _, err := store.Login(context.Background(), tt.username, tt.password); err == nil {
				t.Fatal("expected error")
			} else if !apperrors.IsCode(err, "INVALID_CREDENTIALS") {
				t.Fatalf("unexpected error: %v", err)
			}

			if state := store.Snapshot(); state.User != nil {
				t.Fatalf("state changed on failed login: %+v", state)
			}
			if _, ok, _ := recorder.Get(context.Background(), recordKey); ok {
				t.Fatal("failed login wrote to storage")
			}
		})
	}
}

func TestLogout_Idempotent(t *testing.T) {
	recorder := storage.NewMemoryRecorder()
	store := newTestStore(t, recorder)
	store.Restore(context.Background())

	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	store.Logout(context.Background())
	store.Logout(context.Background())

	state := store.Snapshot()
	if state.User != nil || state.IsAuthenticated {
		t.Fatalf("expected signed-out state, got %+v", state)
	}
	if _, ok, _ := recorder.Get(context.Background(), recordKey); ok {
		t.Fatal("record still present after logout")
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	recorder := storage.NewMemoryRecorder()

	first := newTestStore(t, recorder)
	first.Restore(context.Background())
	loggedIn, err := first.Login(context.Background(), "admin", "x")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Simulated restart: fresh store over the same backend.
	second := newTestStore(t, recorder)
	if state := second.Snapshot(); !state.Loading {
		t.Fatal("new store must start in the loading state")
	}
	second.Restore(context.Background())

	state := second.Snapshot()
	if state.Loading {
		t.Fatal("loading still set after restore")
	}
	if state.User == nil {
		t.Fatal("restore lost the session")
	}
	if *state.User != *loggedIn {
		t.Fatalf("restored user %+v differs from logged-in user %+v", *state.User, *loggedIn)
	}
}

func TestRestore_MissingRecord(t *testing.T) {
	store := newTestStore(t, nil)
	store.Restore(context.Background())

	state := store.Snapshot()
	if state.Loading || state.User != nil || state.IsAuthenticated {
		t.Fatalf("expected signed-out, settled state, got %+v", state)
	}
}

func TestRestore_CorruptRecordFailsOpen(t *testing.T) {
	tests := []struct {
		name   string
		record []byte
	}{
		{"not json", []byte("{nope")},
		{"wrong shape", []byte(`[1,2,3]`)},
		{"unknown role", []byte(`{"username":"admin","role":"root"}`)},
		{"missing username", []byte(`{"role":"admin"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := storage.NewMemoryRecorder()
			if err := recorder.Set(context.Background(), recordKey, tt.record); err != nil {
				t.Fatalf("Set: %v", err)
			}

			store := newTestStore(t, recorder)
			store.Restore(context.Background())

			state := store.Snapshot()
			if state.Loading {
				t.Fatal("loading still set after restore")
			}
			if state.User != nil {
				t.Fatalf("corrupt record produced a user: %+v", state.User)
			}
		})
	}
}

func TestHasRole(t *testing.T) {
	store := newTestStore(t, nil)
	store.Restore(context.Background())

	if store.HasRole(domain.RoleAdmin) || store.HasRole(domain.RoleManager) {
		t.Fatal("HasRole true while signed out")
	}

	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !store.HasRole(domain.RoleManager) {
		t.Fatal("expected manager role")
	}
	if store.HasRole(domain.RoleAdmin) {
		t.Fatal("manager reported as admin")
	}
}
