package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

type billsRepo struct {
	db dbtx
}

const billViewSelect = `
	SELECT b.id, b.admin_id, b.member_id, b.package_id, b.amount, b.due_date, b.status, b.paid_date,
	       b.created_at, b.updated_at,
	       m.name, m.email, m.status, m.join_date,
	       COALESCE(p.name, ''), COALESCE(p.price, '0'), COALESCE(p.billing_cycle, ''),
	       r.id
	FROM bills b
	JOIN members m ON m.id = b.member_id
	LEFT JOIN packages p ON p.id = b.package_id
	LEFT JOIN receipts r ON r.bill_id = b.id`

func scanBillView(row scanner) (domain.BillView, error) {
	var (
		v         domain.BillView
		packageID sql.NullString
		paidDate  sql.NullTime
		receiptID sql.NullString
	)
	err := row.Scan(
		&v.ID, &v.AdminID, &v.MemberID, &packageID, &v.Amount, &v.DueDate, &v.Status, &paidDate,
		&v.CreatedAt, &v.UpdatedAt,
		&v.MemberName, &v.MemberEmail, &v.MemberStatus, &v.MemberJoinDate,
		&v.PackageName, &v.PackagePrice, &v.PackageBillingCycle,
		&receiptID,
	)
	if err != nil {
		return domain.BillView{}, err
	}
	v.PackageID = mapNullStringPtr(packageID)
	v.PaidDate = mapNullTimePtr(paidDate)
	v.ReceiptID = mapNullStringPtr(receiptID)
	return v, nil
}

func (r *billsRepo) GetBill(ctx context.Context, adminID, id string) (domain.BillView, error) {
	row := r.db.QueryRowContext(ctx, billViewSelect+` WHERE b.id = ? AND b.admin_id = ?`, id, adminID)
	v, err := scanBillView(row)
	if err != nil {
		return domain.BillView{}, mapNotFound(err)
	}
	return v, nil
}

func (r *billsRepo) ListBills(ctx context.Context, f store.BillFilter) ([]domain.BillView, error) {
	var (
		where []string
		args  []any
	)
	if f.AdminID != "" {
		where = append(where, "b.admin_id = ?")
		args = append(args, f.AdminID)
	}
	if f.MemberID != "" {
		where = append(where, "b.member_id = ?")
		args = append(args, f.MemberID)
	}
	if len(f.Statuses) > 0 {
		where = append(where, "b.status IN ("+placeholders(len(f.Statuses))+")")
		for _, s := range f.Statuses {
			args = append(args, string(s))
		}
	}
	if f.CreatedFrom != nil {
		where = append(where, "b.created_at >= ?")
		args = append(args, utc(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		where = append(where, "b.created_at <= ?")
		args = append(args, utc(*f.CreatedTo))
	}
	if f.DueBefore != nil {
		where = append(where, "b.due_date < ?")
		args = append(args, utc(*f.DueBefore))
	}

	q := billViewSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}

	switch f.OrderBy {
	case store.BillsByDueDesc:
		q += " ORDER BY b.due_date DESC, b.id DESC"
	case store.BillsByDueAsc:
		q += " ORDER BY b.due_date ASC, b.id ASC"
	default:
		q += " ORDER BY b.created_at DESC, b.id DESC"
	}

	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BillView
	for rows.Next() {
		v, err := scanBillView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *billsRepo) CreateBill(ctx context.Context, b domain.Bill) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bills (id, admin_id, member_id, package_id, amount, due_date, status, paid_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.AdminID, b.MemberID, mapOptionalString(b.PackageID), b.Amount.String(),
		utc(b.DueDate), string(b.Status), mapOptionalTime(b.PaidDate),
		utc(b.CreatedAt), utc(b.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *billsRepo) UpdateBillStatus(
	ctx context.Context,
	id string,
	status domain.BillStatus,
	paidDate *time.Time,
) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE bills SET status = ?, paid_date = ?, updated_at = ? WHERE id = ?`,
		string(status), mapOptionalTime(paidDate), utc(time.Now()), id,
	))
}
