package ports

import (
	"github.com/tourkart/booking-gateway/internal/core/domain"
)

// LoginPath is the public entry view named by every redirect signal.
const LoginPath = "/login"

// GuardDecision is the outcome of a route guard check: either the view is
// reachable, or the caller must redirect to the public entry point.
type GuardDecision struct {
	Allowed    bool
	RedirectTo string
}

// SessionGate is the single source of truth for whether the current actor may
// see protected content, and whether it additionally holds the admin role.
type SessionGate interface {
	// Login records the identity and returns a signed session token. It is a
	// total function: identity correctness is the credential collaborator's
	// concern, the gate trusts whatever identity it is given.
	Login(identity string) (token string, session *domain.Session, err error)
	// Logout clears the session unconditionally. All protected routes become
	// unreachable for its token immediately.
	Logout(sessionID string)
	// IsAuthorized reports reachability. With a nil role it only requires an
	// authenticated, still-live session; with a role it additionally requires
	// the session to hold it.
	IsAuthorized(sessionID string, required *domain.Role) bool
	// Guard evaluates IsAuthorized and resolves a denial into a redirect
	// signal naming the public entry view, never an error.
	Guard(sessionID string, required *domain.Role) GuardDecision
	// Resolve returns the live session for a token-supplied ID, if any.
	Resolve(sessionID string) (*domain.Session, bool)
}
