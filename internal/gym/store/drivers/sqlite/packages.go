package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type packagesRepo struct {
	db dbtx
}

const packageColumns = `id, admin_id, name, description, price, billing_cycle, features, is_active, created_at, updated_at`

func scanPackage(row scanner) (domain.Package, error) {
	var (
		p        domain.Package
		features string
	)
	err := row.Scan(&p.ID, &p.AdminID, &p.Name, &p.Description, &p.Price, &p.BillingCycle,
		&features, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Package{}, err
	}
	if features != "" {
		if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
			return domain.Package{}, err
		}
	}
	return p, nil
}

func encodeFeatures(features []string) (string, error) {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	return string(b), err
}

func (r *packagesRepo) GetPackage(ctx context.Context, adminID, id string) (domain.Package, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE id = ? AND admin_id = ?`, id, adminID)
	p, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, mapNotFound(err)
	}
	return p, nil
}

func (r *packagesRepo) ListPackages(ctx context.Context, adminID string) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE admin_id = ? ORDER BY created_at DESC, id DESC`,
		adminID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *packagesRepo) CreatePackage(ctx context.Context, p domain.Package) error {
	features, err := encodeFeatures(p.Features)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO packages (id, admin_id, name, description, price, billing_cycle, features, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AdminID, p.Name, p.Description, p.Price.String(), p.BillingCycle, features, p.IsActive,
		utc(p.CreatedAt), utc(p.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *packagesRepo) UpdatePackage(ctx context.Context, p domain.Package) error {
	features, err := encodeFeatures(p.Features)
	if err != nil {
		return err
	}
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE packages
		SET name = ?, description = ?, price = ?, billing_cycle = ?, features = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND admin_id = ?`,
		p.Name, p.Description, p.Price.String(), p.BillingCycle, features, p.IsActive, utc(time.Now()),
		p.ID, p.AdminID,
	))
}

func (r *packagesRepo) DeletePackage(ctx context.Context, adminID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM packages WHERE id = ? AND admin_id = ?`, id, adminID,
	))
}
