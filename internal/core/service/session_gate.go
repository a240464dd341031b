package service

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tourkart/booking-gateway/internal/api/metrics"
	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// SessionGate owns all live sessions. Login and Logout are total functions
// over in-memory state; a session lives only as long as the process does.
// The mutex serializes gate reads racing with login/logout.
type SessionGate struct {
	mu            sync.RWMutex
	sessions      map[string]*domain.Session
	jwtSecret     string
	tokenTTL      time.Duration
	adminIdentity string
	log           zerolog.Logger
}

// NewSessionGate builds a gate granting domain.RoleAdmin to the single
// configured admin identity (exact match) and domain.RoleTraveler to
// everyone else.
func NewSessionGate(jwtSecret, adminIdentity string, tokenTTL time.Duration, log zerolog.Logger) *SessionGate {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionGate{
		sessions:      make(map[string]*domain.Session),
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		adminIdentity: adminIdentity,
		log:           log,
	}
}

// Login records the identity and mints a signed token carrying the session
// ID. It never fails on identity content: the gate trusts whatever identity
// the credential collaborator verified.
func (g *SessionGate) Login(identity string) (string, *domain.Session, error) {
	role := domain.RoleTraveler
	if identity == g.adminIdentity {
		role = domain.RoleAdmin
	}

	session := &domain.Session{
		ID:            uuid.NewString(),
		Identity:      identity,
		Role:          role,
		Authenticated: true,
		CreatedAt:     time.Now().UTC(),
	}

	token, err := g.signToken(session)
	if err != nil {
		return "", nil, err
	}

	g.mu.Lock()
	g.sessions[session.ID] = session
	g.mu.Unlock()

	g.log.Info().Str("session_id", session.ID).Str("role", string(role)).Msg("session opened")
	return token, session, nil
}

// Logout clears the session unconditionally. A still-valid token for the
// same session ID no longer passes any guard check afterwards.
func (g *SessionGate) Logout(sessionID string) {
	g.mu.Lock()
	delete(g.sessions, sessionID)
	g.mu.Unlock()

	g.log.Info().Str("session_id", sessionID).Msg("session closed")
}

// Resolve returns the live session for the given ID, if any.
func (g *SessionGate) Resolve(sessionID string) (*domain.Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.sessions[sessionID]
	return s, ok
}

// IsAuthorized reports whether the session may see protected content, and
// with a non-nil role, whether it additionally holds that role.
func (g *SessionGate) IsAuthorized(sessionID string, required *domain.Role) bool {
	g.mu.RLock()
	session, ok := g.sessions[sessionID]
	g.mu.RUnlock()

	if !ok || !session.Authenticated {
		return false
	}
	if required == nil {
		return true
	}
	return session.Role == *required
}

// Guard resolves an authorization check into either access or a redirect to
// the public entry view. Denials never escalate into errors.
func (g *SessionGate) Guard(sessionID string, required *domain.Role) ports.GuardDecision {
	if g.IsAuthorized(sessionID, nil) {
		if required == nil || g.IsAuthorized(sessionID, required) {
			return ports.GuardDecision{Allowed: true}
		}
		metrics.GuardDenialsTotal.WithLabelValues("role").Inc()
		return ports.GuardDecision{RedirectTo: ports.LoginPath}
	}
	metrics.GuardDenialsTotal.WithLabelValues("unauthenticated").Inc()
	return ports.GuardDecision{RedirectTo: ports.LoginPath}
}

func (g *SessionGate) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"identity": session.Identity,
		"role":     string(session.Role),
		"exp":      time.Now().Add(g.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(g.jwtSecret))
}
