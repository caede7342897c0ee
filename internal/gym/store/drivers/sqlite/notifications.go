package sqlite

import (
	"context"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type notificationsRepo struct {
	db dbtx
}

const notificationColumns = `id, admin_id, member_id, title, message, type, read, created_at`

func scanNotification(row scanner) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.AdminID, &n.MemberID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt)
	return n, err
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, admin_id, member_id, title, message, type, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.AdminID, n.MemberID, n.Title, n.Message, n.Type, n.Read, utc(n.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *notificationsRepo) list(ctx context.Context, q string, args ...any) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE member_id = ? ORDER BY created_at DESC, id DESC`,
		memberID,
	)
}

func (r *notificationsRepo) ListByAdmin(ctx context.Context, adminID string, limit int) ([]domain.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE admin_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		adminID, limit,
	)
}

func (r *notificationsRepo) MarkRead(ctx context.Context, memberID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND member_id = ?`, id, memberID,
	))
}

func (r *notificationsRepo) MarkAllRead(ctx context.Context, memberID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE member_id = ? AND read = 0`, memberID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationsRepo) DeleteNotification(ctx context.Context, memberID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE id = ? AND member_id = ?`, id, memberID,
	))
}
