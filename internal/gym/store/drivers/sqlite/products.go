package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, admin_id, name, description, category, image_url, price, stock, sales, created_at, updated_at`

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.AdminID, &p.Name, &p.Description, &p.Category, &p.ImageURL,
		&p.Price, &p.Stock, &p.Sales, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productsRepo) GetProduct(ctx context.Context, adminID, id string) (domain.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ? AND admin_id = ?`, id, adminID))
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) GetProducts(ctx context.Context, adminID string, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, adminID)
	for _, id := range ids {
		args = append(args, id)
	}
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE admin_id = ? AND id IN (`+placeholders(len(ids))+`)`,
		args...,
	)
}

func (r *productsRepo) ListProducts(
	ctx context.Context,
	adminID string,
	order store.ProductOrder,
) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE admin_id = ?`
	switch order {
	case store.ProductsBySalesDesc:
		q += ` ORDER BY sales DESC, created_at DESC, id DESC`
	default:
		q += ` ORDER BY created_at DESC, id DESC`
	}
	return r.list(ctx, q, adminID)
}

func (r *productsRepo) list(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, admin_id, name, description, category, image_url, price, stock, sales, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AdminID, p.Name, p.Description, p.Category, p.ImageURL, p.Price.String(),
		p.Stock, p.Sales, utc(p.CreatedAt), utc(p.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, category = ?, image_url = ?, price = ?, stock = ?, updated_at = ?
		WHERE id = ? AND admin_id = ?`,
		p.Name, p.Description, p.Category, p.ImageURL, p.Price.String(), p.Stock, utc(time.Now()),
		p.ID, p.AdminID,
	))
}

func (r *productsRepo) DeleteProduct(ctx context.Context, adminID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND admin_id = ?`, id, adminID,
	))
}

func (r *productsRepo) AdjustStock(ctx context.Context, id string, stockDelta, salesDelta int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = stock + ?, sales = MAX(sales + ?, 0), updated_at = ?
		WHERE id = ? AND stock + ? >= 0`,
		stockDelta, salesDelta, utc(time.Now()), id, stockDelta,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either the product is gone or the guard tripped.
	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrInsufficientStock
}
