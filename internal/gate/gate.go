// Package gate decides, for each navigation request, whether a protected
// view renders or the operator is bounced to sign-in or to the default view.
package gate

import (
	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/session"
)

// Outcome is the gate's verdict for one request.
type Outcome int

const (
	// OutcomeWait means the startup restore has not finished; show a
	// neutral waiting state, never redirect. Redirecting here would bounce
	// an already-signed-in operator to sign-in on reload.
	OutcomeWait Outcome = iota
	// OutcomeSignIn redirects to the sign-in view, preserving the
	// originally requested location.
	OutcomeSignIn
	// OutcomeHome redirects an authenticated operator whose role does not
	// satisfy the view's requirement back to the default view.
	OutcomeHome
	// OutcomeAdmit renders the requested view.
	OutcomeAdmit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWait:
		return "wait"
	case OutcomeSignIn:
		return "sign_in"
	case OutcomeHome:
		return "home"
	case OutcomeAdmit:
		return "admit"
	default:
		return "unknown"
	}
}

// Decision carries the outcome plus the location it was evaluated for.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Gate evaluates navigation requests against the current session. Each
// request is a pure function of the session snapshot and the required roles;
// nothing is carried across requests.
type Gate struct {
	store *session.Store
}

// New builds a gate over the given session store.
func New(store *session.Store) *Gate {
	return &Gate{store: store}
}

// Decide evaluates a request for the given location. With no required roles
// any authenticated operator is admitted; with required roles, any one of
// them suffices.
func (g *Gate) Decide(location string, required ...domain.Role) Decision {
	state := g.store.Snapshot()

	switch {
	case state.Loading:
		return Decision{Outcome: OutcomeWait, Location: location}
	case !state.IsAuthenticated:
		return Decision{Outcome: OutcomeSignIn, Location: location}
	case len(required) > 0 && !g.anyRole(required):
		return Decision{Outcome: OutcomeHome, Location: location}
	default:
		return Decision{Outcome: OutcomeAdmit, Location: location}
	}
}

func (g *Gate) anyRole(required []domain.Role) bool {
	for _, role := range required {
		if g.store.HasRole(role) {
			return true
		}
	}
	return false
}
