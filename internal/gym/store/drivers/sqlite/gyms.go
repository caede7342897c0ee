package sqlite

import (
	"context"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type gymsRepo struct {
	db dbtx
}

func (r *gymsRepo) GetGym(ctx context.Context, adminID string) (domain.Gym, error) {
	var g domain.Gym
	err := r.db.QueryRowContext(ctx,
		`SELECT admin_id, name, email, phone, address, updated_at FROM gyms WHERE admin_id = ?`,
		adminID,
	).Scan(&g.AdminID, &g.Name, &g.Email, &g.Phone, &g.Address, &g.UpdatedAt)
	if err != nil {
		return domain.Gym{}, mapNotFound(err)
	}
	return g, nil
}

func (r *gymsRepo) UpsertGym(ctx context.Context, g domain.Gym) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gyms (admin_id, name, email, phone, address, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (admin_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			address = excluded.address,
			updated_at = excluded.updated_at`,
		g.AdminID, g.Name, g.Email, g.Phone, g.Address, utc(g.UpdatedAt),
	)
	return err
}
