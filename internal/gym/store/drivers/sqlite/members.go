package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, admin_id, name, email, phone, status, join_date, created_at, updated_at`

func scanMember(row scanner) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.AdminID, &m.Name, &m.Email, &m.Phone, &m.Status, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *membersRepo) GetMember(ctx context.Context, adminID, id string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = ? AND admin_id = ?`, id, adminID)
	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE email = ?`, email)
	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) ListMembers(ctx context.Context, adminID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE admin_id = ? ORDER BY join_date DESC, id DESC`,
		adminID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO members (id, admin_id, name, email, phone, status, join_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.AdminID, m.Name, m.Email, m.Phone, string(m.Status),
		utc(m.JoinDate), utc(m.CreatedAt), utc(m.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *membersRepo) UpdateMember(ctx context.Context, m domain.Member) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE members SET name = ?, email = ?, phone = ?, status = ?, join_date = ?, updated_at = ?
		WHERE id = ? AND admin_id = ?`,
		m.Name, m.Email, m.Phone, string(m.Status), utc(m.JoinDate), utc(time.Now()),
		m.ID, m.AdminID,
	)
	return requireAffected(res, mapConstraint(err))
}

func (r *membersRepo) UpdateMemberContact(ctx context.Context, id, name, phone string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE members SET name = ?, phone = ?, updated_at = ? WHERE id = ?`,
		name, phone, utc(time.Now()), id,
	))
}

func (r *membersRepo) DeleteMember(ctx context.Context, adminID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM members WHERE id = ? AND admin_id = ?`, id, adminID,
	))
}
