package gate

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/session"
	"github.com/spec-kit/ppe-dashboard/internal/session/storage"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(storage.NewMemoryRecorder(), "ppe_user", zap.NewNop(), nil)
}

func TestDecide_WaitWhileLoading(t *testing.T) {
	store := newStore(t) // Restore never called, session still loading

	g := New(store)
	for _, required := range [][]domain.Role{nil, {domain.RoleAdmin}} {
		decision := g.Decide("/api/dashboard", required...)
		if decision.Outcome != OutcomeWait {
			t.Fatalf("outcome = %v, want wait (required=%v)", decision.Outcome, required)
		}
	}
}

func TestDecide_SignInWhenUnauthenticated(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())

	decision := New(store).Decide("/api/dashboard")
	if decision.Outcome != OutcomeSignIn {
		t.Fatalf("outcome = %v, want sign_in", decision.Outcome)
	}
	if decision.Location != "/api/dashboard" {
		t.Fatalf("location = %q, original request lost", decision.Location)
	}
}

func TestDecide_HomeWhenRoleInsufficient(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())
	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	decision := New(store).Decide("/api/settings", domain.RoleAdmin)
	if decision.Outcome != OutcomeHome {
		t.Fatalf("outcome = %v, want home", decision.Outcome)
	}
}

func TestDecide_AdmitSufficientRole(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())
	if _, err := store.Login(context.Background(), "admin", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	g := New(store)
	if d := g.Decide("/api/settings", domain.RoleAdmin); d.Outcome != OutcomeAdmit {
		t.Fatalf("outcome = %v, want admit", d.Outcome)
	}
	if d := g.Decide("/api/dashboard"); d.Outcome != OutcomeAdmit {
		t.Fatalf("no-role outcome = %v, want admit", d.Outcome)
	}
}

func TestDecide_NoRequiredRoleAdmitsAnyAuthenticated(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())
	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if d := New(store).Decide("/api/reports"); d.Outcome != OutcomeAdmit {
		t.Fatalf("outcome = %v, want admit", d.Outcome)
	}
}

func TestDecide_AnyOfSeveralRoles(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())
	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	d := New(store).Decide("/api/alerts", domain.RoleAdmin, domain.RoleManager)
	if d.Outcome != OutcomeAdmit {
		t.Fatalf("outcome = %v, want admit", d.Outcome)
	}
}

func TestDecide_PureFunctionOfSession(t *testing.T) {
	store := newStore(t)
	store.Restore(context.Background())
	g := New(store)

	if d := g.Decide("/api/dashboard"); d.Outcome != OutcomeSignIn {
		t.Fatalf("outcome = %v, want sign_in", d.Outcome)
	}
	if _, err := store.Login(context.Background(), "manager", "x"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if d := g.Decide("/api/dashboard"); d.Outcome != OutcomeAdmit {
		t.Fatalf("outcome after login = %v, want admit", d.Outcome)
	}
	store.Logout(context.Background())
	if d := g.Decide("/api/dashboard"); d.Outcome != OutcomeSignIn {
		t.Fatalf("outcome after logout = %v, want sign_in", d.Outcome)
	}
}
