package sqlite

import (
	"context"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

type receiptsRepo struct {
	db dbtx
}

const receiptColumns = `id, admin_id, bill_id, member_id, receipt_no, amount, payment_method, notes, issued_at`

func scanReceipt(row scanner) (domain.Receipt, error) {
	var rc domain.Receipt
	err := row.Scan(&rc.ID, &rc.AdminID, &rc.BillID, &rc.MemberID, &rc.ReceiptNo, &rc.Amount,
		&rc.PaymentMethod, &rc.Notes, &rc.IssuedAt)
	return rc, err
}

func (r *receiptsRepo) CreateReceipt(ctx context.Context, rc domain.Receipt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO receipts (id, admin_id, bill_id, member_id, receipt_no, amount, payment_method, notes, issued_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rc.ID, rc.AdminID, rc.BillID, rc.MemberID, rc.ReceiptNo, rc.Amount.String(),
		rc.PaymentMethod, rc.Notes, utc(rc.IssuedAt),
	)
	return mapConstraint(err)
}

func (r *receiptsRepo) GetReceipt(ctx context.Context, id string) (domain.Receipt, error) {
	rc, err := scanReceipt(r.db.QueryRowContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE id = ?`, id))
	if err != nil {
		return domain.Receipt{}, mapNotFound(err)
	}
	return rc, nil
}

func (r *receiptsRepo) GetReceiptByBill(ctx context.Context, billID string) (domain.Receipt, error) {
	rc, err := scanReceipt(r.db.QueryRowContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE bill_id = ?`, billID))
	if err != nil {
		return domain.Receipt{}, mapNotFound(err)
	}
	return rc, nil
}

func (r *receiptsRepo) ListReceiptsByMember(ctx context.Context, memberID string) ([]domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE member_id = ? ORDER BY issued_at DESC, id DESC`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (r *receiptsRepo) DeleteReceiptByBill(ctx context.Context, billID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE bill_id = ?`, billID)
	return err
}
