package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type adminsRepo struct {
	db dbtx
}

const adminColumns = `id, email, name, phone, mfa_enabled, mfa_secret, created_at, updated_at`

func scanAdmin(row scanner) (domain.Admin, error) {
	var (
		a          domain.Admin
		mfaEnabled sql.NullTime
		mfaSecret  sql.NullString
	)
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.Phone, &mfaEnabled, &mfaSecret, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, err
	}
	a.MFAEnabled = mapNullTimePtr(mfaEnabled)
	a.MFASecret = mapNullStringPtr(mfaSecret)
	return a, nil
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = ?`, email)
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, name, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.Name, a.Phone, utc(a.CreatedAt), utc(a.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *adminsRepo) UpdateAdminProfile(ctx context.Context, id, name, phone string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE admins SET name = ?, phone = ?, updated_at = ? WHERE id = ?`,
		name, phone, utc(time.Now()), id,
	))
}

func (r *adminsRepo) UpdateMFASecret(ctx context.Context, id string, secret string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_secret = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(&secret), utc(time.Now()), id,
	))
}

func (r *adminsRepo) EnableMFA(ctx context.Context, id string) error {
	now := utc(time.Now())
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_enabled = ?, updated_at = ? WHERE id = ?`,
		now, now, id,
	))
}

func (r *adminsRepo) DisableMFA(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE admins SET mfa_enabled = NULL, mfa_secret = NULL, updated_at = ? WHERE id = ?`,
		utc(time.Now()), id,
	))
}
