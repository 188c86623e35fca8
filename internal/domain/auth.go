package domain

import (
	"context"
	"time"
)

// Identity is the decoded claim set of the upstream session token. It is
// present iff the token was well-formed at login time.
type Identity struct {
	UserID   int64
	RoleID   int64
	RoleName string
	Nombre   string
}

// EsCoordinador reports whether the identity holds the reviewer role.
func (i *Identity) EsCoordinador() bool {
	return i != nil && i.RoleName == RolCoordinador
}

// Session is one browser session. SealedToken holds the upstream bearer
// token encrypted at rest; Identity is nil when the token failed to decode.
type Session struct {
	ID          string
	SealedToken string
	Identity    *Identity
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// SessionRepository is the port for session persistence. GetByID returns
// (nil, nil) when no session exists for the id.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}
