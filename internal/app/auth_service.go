package app

import (
	"context"
	"time"

	"evidencias/internal/domain"
)

const sessionTTL = 24 * time.Hour

// AuthService is the session store: it exchanges credentials for an upstream
// token, derives the identity from the token's claims, and persists the
// session so a page reload restores it without re-login.
type AuthService struct {
	gw       domain.Gateway
	sessions domain.SessionRepository
	key      [32]byte
}

// NewAuthService creates the session store backed by the given gateway and
// session repository. key encrypts upstream tokens at rest.
func NewAuthService(gw domain.Gateway, sessions domain.SessionRepository, key [32]byte) *AuthService {
	return &AuthService{gw: gw, sessions: sessions, key: key}
}

// Login authenticates against the remote API and creates a session. When the
// issued token fails to decode, the session still stores the token but
// carries no identity, which leaves the user effectively logged out.
func (s *AuthService) Login(ctx context.Context, correo, password string) (*domain.Session, error) {
	token, nombre, err := s.gw.Login(ctx, correo, password)
	if err != nil {
		return nil, err
	}
	sess, err := s.createSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Identity != nil && sess.Identity.Nombre == "" {
		sess.Identity.Nombre = nombre
	}
	return sess, nil
}

// LoginWithToken creates a session from an already-validated token (SSO).
func (s *AuthService) LoginWithToken(ctx context.Context, rawToken string) (*domain.Session, error) {
	return s.createSession(ctx, rawToken)
}

func (s *AuthService) createSession(ctx context.Context, rawToken string) (*domain.Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}
	sealed, err := sealToken(&s.key, rawToken)
	if err != nil {
		return nil, err
	}

	// Identity is best-effort: a malformed token downgrades to a session
	// without identity rather than failing the login outright.
	identity, err := DecodeIdentity(rawToken)
	if err != nil {
		identity = nil
	}

	now := time.Now()
	sess := &domain.Session{
		ID:          id,
		SealedToken: sealed,
		Identity:    identity,
		ExpiresAt:   now.Add(sessionTTL),
		CreatedAt:   now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Validate restores a session by id and returns the identity and the
// decrypted upstream token. A nil identity with a nil error means the
// session exists but holds no usable identity (treated as logged out by the
// route guard).
func (s *AuthService) Validate(ctx context.Context, sessionID string) (*domain.Identity, string, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if sess == nil {
		return nil, "", ErrSesionNoEncontrada
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, "", ErrSesionExpirada
	}

	token, err := openToken(&s.key, sess.SealedToken)
	if err != nil {
		// Undecryptable token (key rotation, corrupt row): drop the session.
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, "", ErrSesionNoEncontrada
	}
	return sess.Identity, token, nil
}

// Logout destroys the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// PurgeExpired removes expired sessions. Called periodically from main.
func (s *AuthService) PurgeExpired(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx)
}
