package domain

import (
	"errors"
	"time"
)

// Role is the authorization level attached to a session. The reference
// product only distinguishes the privileged owner from everyone else.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTraveler Role = "traveler"
)

var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the in-memory record of an authenticated actor. The identity is
// an opaque string supplied by the credential collaborator; it is set if and
// only if the session is authenticated. Owned exclusively by the session
// gate — no other component mutates it.
type Session struct {
	ID            string
	Identity      string
	Role          Role
	Authenticated bool
	CreatedAt     time.Time
}
