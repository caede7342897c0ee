package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

type ordersRepo struct {
	db dbtx
}

const orderColumns = `o.id, o.admin_id, o.member_id, o.member_name, o.total_amount, o.status, o.payment_status, o.created_at, o.updated_at`

func scanOrder(row scanner) (domain.Order, error) {
	var (
		o        domain.Order
		memberID sql.NullString
	)
	err := row.Scan(&o.ID, &o.AdminID, &memberID, &o.MemberName, &o.TotalAmount, &o.Status,
		&o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	o.MemberID = mapNullStringPtr(memberID)
	return o, nil
}

func scanOrderItem(row scanner) (domain.OrderItem, error) {
	var (
		it        domain.OrderItem
		productID sql.NullString
	)
	err := row.Scan(&it.ID, &it.OrderID, &productID, &it.ProductName, &it.Quantity, &it.Price)
	if err != nil {
		return domain.OrderItem{}, err
	}
	it.ProductID = productID.String
	return it, nil
}

func (r *ordersRepo) GetOrder(ctx context.Context, adminID, id string) (domain.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.id = ? AND o.admin_id = ?`, id, adminID))
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}

	items, err := r.items(ctx, `WHERE oi.order_id = ?`, id)
	if err != nil {
		return domain.Order{}, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, f store.OrderFilter) ([]domain.Order, error) {
	var (
		where []string
		args  []any
	)
	if f.AdminID != "" {
		where = append(where, "o.admin_id = ?")
		args = append(args, f.AdminID)
	}
	if f.MemberID != "" {
		where = append(where, "o.member_id = ?")
		args = append(args, f.MemberID)
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders o`+cond+` ORDER BY o.created_at DESC, o.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	items, err := r.items(ctx, `JOIN orders o ON o.id = oi.order_id`+cond, args...)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

// items loads order items grouped by order ID.
func (r *ordersRepo) items(ctx context.Context, clause string, args ...any) (map[string][]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, oi.quantity, oi.price
		FROM order_items oi `+clause+` ORDER BY oi.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderItem)
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, admin_id, member_id, member_name, total_amount, status, payment_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.AdminID, mapOptionalString(o.MemberID), o.MemberName, o.TotalAmount.String(),
		string(o.Status), string(o.PaymentStatus), utc(o.CreatedAt), utc(o.UpdatedAt),
	)
	if err != nil {
		return mapConstraint(err)
	}
	return r.insertItems(ctx, o.ID, o.Items)
}

func (r *ordersRepo) insertItems(ctx context.Context, orderID string, items []domain.OrderItem) error {
	for _, it := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price)
			VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID, orderID, mapOptionalString(&it.ProductID), it.ProductName, it.Quantity, it.Price.String(),
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *ordersRepo) ReplaceOrder(ctx context.Context, o domain.Order) error {
	err := requireAffected(r.db.ExecContext(ctx, `
		UPDATE orders SET member_id = ?, member_name = ?, total_amount = ?, updated_at = ?
		WHERE id = ? AND admin_id = ?`,
		mapOptionalString(o.MemberID), o.MemberName, o.TotalAmount.String(), utc(time.Now()),
		o.ID, o.AdminID,
	))
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, o.ID, o.Items)
}

func (r *ordersRepo) UpdateOrderStatus(
	ctx context.Context,
	id string,
	status domain.OrderStatus,
	paymentStatus domain.PaymentStatus,
) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE orders SET status = ?, payment_status = ?, updated_at = ? WHERE id = ?`,
		string(status), string(paymentStatus), utc(time.Now()), id,
	))
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, adminID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM orders WHERE id = ? AND admin_id = ?`, id, adminID,
	))
}
