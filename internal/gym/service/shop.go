package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/report"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// ShopService runs the supplement store: products, orders and stock.
type ShopService struct {
	Store    store.Store
	Clock    Clock
	Location *time.Location
}

type ProductInput struct {
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       decimal.Decimal
	Stock       int
}

type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	ImageURL    *string
	Price       *decimal.Decimal
	Stock       *int
}

type ItemInput struct {
	ProductID string
	Quantity  int
}

type OrderInput struct {
	MemberName string
	MemberID   *string // nil for walk-in customers
	Items      []ItemInput
}

type OrderStatusPatch struct {
	Status        *string
	PaymentStatus *string
}

func (s *ShopService) CreateProduct(ctx context.Context, adminID string, in ProductInput) (domain.Product, error) {
	now := s.Clock.now()
	p := domain.Product{
		ID:          idx.NewAt(now).String(),
		AdminID:     adminID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// ListProducts is the admin catalogue, newest first.
func (s *ShopService) ListProducts(ctx context.Context, adminID string) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx, adminID, store.ProductsByCreatedDesc)
}

// Catalogue is the member view: best sellers first, uncategorised
// products shown under the default category.
func (s *ShopService) Catalogue(ctx context.Context, adminID string) ([]domain.Product, error) {
	products, err := s.Store.Products().ListProducts(ctx, adminID, store.ProductsBySalesDesc)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Category == "" {
			products[i].Category = domain.DefaultProductCategory
		}
	}
	return products, nil
}

func (s *ShopService) UpdateProduct(ctx context.Context, adminID, id string, patch ProductPatch) (domain.Product, error) {
	p, err := s.Store.Products().GetProduct(ctx, adminID, id)
	if err != nil {
		return domain.Product{}, err
	}
	patchString(&p.Name, patch.Name)
	patchString(&p.Description, patch.Description)
	patchString(&p.Category, patch.Category)
	patchString(&p.ImageURL, patch.ImageURL)
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	p.UpdatedAt = s.Clock.now()
	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes the product. Past order items keep the name and
// price they were sold at.
func (s *ShopService) DeleteProduct(ctx context.Context, adminID, id string) error {
	return s.Store.Products().DeleteProduct(ctx, adminID, id)
}

func validateProduct(p domain.Product) error {
	switch {
	case p.Name == "":
		return invalid("name is required")
	case p.Price.IsNegative():
		return invalid("price must not be negative")
	case p.Stock < 0:
		return invalid("stock must not be negative")
	}
	return nil
}

// CreateOrder records an order taken by the admin and takes the stock for
// it. Everything happens in one transaction with guarded decrements, so
// two orders racing for the last unit cannot both succeed.
func (s *ShopService) CreateOrder(ctx context.Context, adminID string, in OrderInput) (domain.Order, error) {
	name := strings.TrimSpace(in.MemberName)
	memberID := trimmedPtr(in.MemberID)
	if name == "" && memberID == nil {
		return domain.Order{}, invalid("member name is required")
	}
	items, err := mergeItems(in.Items)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if memberID != nil {
			m, err := tx.Members().GetMember(ctx, adminID, *memberID)
			if err != nil {
				return mapMissing(err, invalid("member not found"))
			}
			if name == "" {
				name = m.Name
			}
		}
		var err error
		order, err = s.placeOrder(ctx, tx, adminID, name, memberID, items)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	slogx.FromContext(ctx).Info("order created",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.TotalAmount.String()),
	)
	return order, nil
}

// PlaceOrder is the member checkout. Name and tenant come from the member
// record; prices always come from the catalogue.
func (s *ShopService) PlaceOrder(ctx context.Context, memberID string, in []ItemInput) (domain.Order, error) {
	items, err := mergeItems(in)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := tx.Members().GetMemberByID(ctx, memberID)
		if err != nil {
			return err
		}
		id := m.ID
		order, err = s.placeOrder(ctx, tx, m.AdminID, m.Name, &id, items)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	slogx.FromContext(ctx).Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("member_id", memberID),
		slog.String("total", order.TotalAmount.String()),
	)
	return order, nil
}

func (s *ShopService) placeOrder(
	ctx context.Context,
	tx store.Tx,
	adminID, name string,
	memberID *string,
	items []ItemInput,
) (domain.Order, error) {
	products, err := loadProducts(ctx, tx, adminID, items)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.Clock.now()
	order := domain.Order{
		ID:            idx.NewAt(now).String(),
		AdminID:       adminID,
		MemberID:      memberID,
		MemberName:    name,
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.Items, order.TotalAmount = buildItems(order.ID, items, products, now)

	for _, it := range items {
		if err := takeStock(ctx, tx, products[it.ProductID], it.Quantity); err != nil {
			return domain.Order{}, err
		}
	}
	if err := tx.Orders().CreateOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateOrder rewrites an order's customer and items. Stock moves by the
// per-product difference between the old and new quantities.
func (s *ShopService) UpdateOrder(ctx context.Context, adminID, id string, in OrderInput) (domain.Order, error) {
	name := strings.TrimSpace(in.MemberName)
	memberID := trimmedPtr(in.MemberID)
	items, err := mergeItems(in.Items)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		old, err := tx.Orders().GetOrder(ctx, adminID, id)
		if err != nil {
			return err
		}
		if memberID != nil {
			m, err := tx.Members().GetMember(ctx, adminID, *memberID)
			if err != nil {
				return mapMissing(err, invalid("member not found"))
			}
			if name == "" {
				name = m.Name
			}
		}
		if name == "" {
			name = old.MemberName
		}

		products, err := loadProducts(ctx, tx, adminID, items)
		if err != nil {
			return err
		}

		before := make(map[string]int, len(old.Items))
		for _, it := range old.Items {
			if it.ProductID != "" {
				before[it.ProductID] += it.Quantity
			}
		}
		after := make(map[string]int, len(items))
		for _, it := range items {
			after[it.ProductID] = it.Quantity
		}

		// Returns first so stock freed by this order can be re-taken.
		for pid, qty := range before {
			if diff := after[pid] - qty; diff < 0 {
				if err := returnStock(ctx, tx, pid, -diff); err != nil {
					return err
				}
			}
		}
		for _, it := range items {
			if diff := it.Quantity - before[it.ProductID]; diff > 0 {
				p := products[it.ProductID]
				if err := takeStock(ctx, tx, p, diff); err != nil {
					return err
				}
			}
		}

		now := s.Clock.now()
		order = old
		order.MemberID = memberID
		order.MemberName = name
		order.UpdatedAt = now
		order.Items, order.TotalAmount = buildItems(order.ID, items, products, now)
		return tx.Orders().ReplaceOrder(ctx, order)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *ShopService) UpdateOrderStatus(ctx context.Context, adminID, id string, patch OrderStatusPatch) (domain.Order, error) {
	var order domain.Order
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Orders().GetOrder(ctx, adminID, id)
		if err != nil {
			return err
		}
		if patch.Status != nil {
			st, ok := domain.ParseOrderStatus(*patch.Status)
			if !ok {
				return invalid("status must be pending, processing, completed or cancelled")
			}
			cur.Status = st
		}
		if patch.PaymentStatus != nil {
			ps, ok := domain.ParsePaymentStatus(*patch.PaymentStatus)
			if !ok {
				return invalid("payment status must be pending, paid or refunded")
			}
			cur.PaymentStatus = ps
		}
		if err := tx.Orders().UpdateOrderStatus(ctx, id, cur.Status, cur.PaymentStatus); err != nil {
			return err
		}
		order, err = tx.Orders().GetOrder(ctx, adminID, id)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// DeleteOrder puts the ordered stock back and removes the order. Items
// whose product no longer exists are skipped.
func (s *ShopService) DeleteOrder(ctx context.Context, adminID, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		order, err := tx.Orders().GetOrder(ctx, adminID, id)
		if err != nil {
			return err
		}
		for _, it := range order.Items {
			if it.ProductID == "" {
				continue
			}
			if err := returnStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return tx.Orders().DeleteOrder(ctx, adminID, id)
	})
}

func (s *ShopService) ListOrders(ctx context.Context, adminID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrders(ctx, store.OrderFilter{AdminID: adminID})
}

func (s *ShopService) ListMyOrders(ctx context.Context, memberID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrders(ctx, store.OrderFilter{MemberID: memberID})
}

func (s *ShopService) Analytics(ctx context.Context, adminID string) (report.StoreAnalytics, error) {
	products, err := s.Store.Products().ListProducts(ctx, adminID, store.ProductsBySalesDesc)
	if err != nil {
		return report.StoreAnalytics{}, err
	}
	orders, err := s.Store.Orders().ListOrders(ctx, store.OrderFilter{AdminID: adminID})
	if err != nil {
		return report.StoreAnalytics{}, err
	}
	return report.BuildStoreAnalytics(products, orders, s.Clock.now(), s.Location), nil
}

// mergeItems folds repeated product ids into one line, keeping the order
// in which products first appear.
func mergeItems(in []ItemInput) ([]ItemInput, error) {
	if len(in) == 0 {
		return nil, invalid("at least one item is required")
	}
	pos := make(map[string]int, len(in))
	out := make([]ItemInput, 0, len(in))
	for _, it := range in {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" {
			return nil, invalid("product id is required")
		}
		if it.Quantity <= 0 {
			return nil, invalid("quantity must be at least 1")
		}
		if i, ok := pos[pid]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		pos[pid] = len(out)
		out = append(out, ItemInput{ProductID: pid, Quantity: it.Quantity})
	}
	return out, nil
}

func loadProducts(ctx context.Context, tx store.Tx, adminID string, items []ItemInput) (map[string]domain.Product, error) {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}
	found, err := tx.Products().GetProducts(ctx, adminID, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, ErrProductsNotFound
	}
	byID := make(map[string]domain.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	return byID, nil
}

// buildItems snapshots current prices into order lines and sums the total.
func buildItems(orderID string, items []ItemInput, products map[string]domain.Product, now time.Time) ([]domain.OrderItem, decimal.Decimal) {
	lines := make([]domain.OrderItem, len(items))
	total := decimal.Zero
	for i, it := range items {
		p := products[it.ProductID]
		lines[i] = domain.OrderItem{
			ID:          idx.NewAt(now).String(),
			OrderID:     orderID,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			Price:       p.Price,
		}
		total = total.Add(lines[i].LineTotal())
	}
	return lines, total
}

// takeStock moves qty units from stock to sales. The store guard has the
// final word; the pre-check only gives a friendlier error.
func takeStock(ctx context.Context, tx store.Tx, p domain.Product, qty int) error {
	if qty > p.Stock {
		return &StockError{Product: p.Name, Available: p.Stock}
	}
	err := tx.Products().AdjustStock(ctx, p.ID, -qty, qty)
	if errors.Is(err, store.ErrInsufficientStock) {
		return &StockError{Product: p.Name, Available: p.Stock}
	}
	return err
}

// returnStock reverses takeStock. Deleted products are ignored.
func returnStock(ctx context.Context, tx store.Tx, productID string, qty int) error {
	err := tx.Products().AdjustStock(ctx, productID, qty, -qty)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
