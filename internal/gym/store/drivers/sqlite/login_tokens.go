package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type loginTokensRepo struct {
	db dbtx
}

func (r *loginTokensRepo) CreateLoginToken(ctx context.Context, t domain.LoginToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO login_tokens (id, token_hash, portal, subject_id, email, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.TokenHash, string(t.Portal), t.SubjectID, t.Email, utc(t.ExpiresAt), utc(t.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *loginTokensRepo) ConsumeLoginToken(
	ctx context.Context,
	tokenHash string,
	portal domain.Portal,
	now time.Time,
) (domain.LoginToken, error) {
	// 1. Claim the token; the WHERE clause is the single-use guard
	err := requireAffected(r.db.ExecContext(ctx, `
		UPDATE login_tokens SET used_at = ?
		WHERE token_hash = ? AND portal = ? AND used_at IS NULL AND expires_at > ?`,
		utc(now), tokenHash, string(portal), utc(now),
	))
	if err != nil {
		return domain.LoginToken{}, err
	}

	// 2. Read back the claimed row
	var (
		t      domain.LoginToken
		usedAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, `
		SELECT id, token_hash, portal, subject_id, email, expires_at, used_at, created_at
		FROM login_tokens WHERE token_hash = ?`, tokenHash,
	).Scan(&t.ID, &t.TokenHash, &t.Portal, &t.SubjectID, &t.Email, &t.ExpiresAt, &usedAt, &t.CreatedAt)
	if err != nil {
		return domain.LoginToken{}, mapNotFound(err)
	}
	t.UsedAt = mapNullTimePtr(usedAt)
	return t, nil
}

func (r *loginTokensRepo) DeleteStaleLoginTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM login_tokens WHERE expires_at < ? OR (used_at IS NOT NULL AND used_at < ?)`,
		utc(cutoff), utc(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
