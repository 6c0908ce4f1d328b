package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.RevokedTokenRepository = (*RevokedTokenRepo)(nil)

// RevokedTokenRepo lista de denegación de sesiones sobre PostgreSQL.
type RevokedTokenRepo struct {
	db Querier
}

// NewRevokedTokenRepository construye el adaptador para tokens revocados.
func NewRevokedTokenRepository(db Querier) *RevokedTokenRepo {
	return &RevokedTokenRepo{db: db}
}

func (r *RevokedTokenRepo) Revoke(token string) error {
	// ON CONFLICT: revocar dos veces el mismo token es inofensivo.
	query := `
		INSERT INTO revoked_tokens (token, created_at)
		VALUES ($1, now())
		ON CONFLICT (token) DO NOTHING`
	_, err := r.db.Exec(context.Background(), query, token)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *RevokedTokenRepo) IsRevoked(token string) (bool, error) {
	var revoked bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)`, token,
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}

func (r *RevokedTokenRepo) PurgeOlderThan(cutoff time.Time) (int64, error) {
	cmd, err := r.db.Exec(context.Background(),
		`DELETE FROM revoked_tokens WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge revoked tokens: %w", err)
	}
	return cmd.RowsAffected(), nil
}
