package postgres

import (
	"context"
	"database/sql"
	"time"

	"evidencias/internal/domain"
)

// SessionRepo implements domain.SessionRepository on PostgreSQL.
type SessionRepo struct {
	db *DB
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session. Identity columns are NULL when the session
// carries no identity.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	var userID, roleID sql.NullInt64
	var roleName, nombre sql.NullString
	if s.Identity != nil {
		userID = sql.NullInt64{Int64: s.Identity.UserID, Valid: true}
		roleID = sql.NullInt64{Int64: s.Identity.RoleID, Valid: true}
		roleName = sql.NullString{String: s.Identity.RoleName, Valid: true}
		nombre = sql.NullString{String: s.Identity.Nombre, Valid: true}
	}
	_, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO sessions (id, sealed_token, user_id, role_id, role_name, nombre, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.SealedToken, userID, roleID, roleName, nombre, s.ExpiresAt, s.CreatedAt,
	)
	return err
}

// GetByID retrieves a session by id, or (nil, nil) when absent.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var s domain.Session
	var userID, roleID sql.NullInt64
	var roleName, nombre sql.NullString
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT id, sealed_token, user_id, role_id, role_name, nombre, expires_at, created_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.SealedToken, &userID, &roleID, &roleName, &nombre, &s.ExpiresAt, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		s.Identity = &domain.Identity{
			UserID:   userID.Int64,
			RoleID:   roleID.Int64,
			RoleName: roleName.String,
			Nombre:   nombre.String,
		}
	}
	return &s, nil
}

// Delete removes a session by id.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.sql.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, time.Now())
	return err
}
