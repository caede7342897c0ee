package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInsufficientStock is returned by AdjustStock when the guarded
	// decrement would take stock below zero.
	ErrInsufficientStock = errors.New("store: insufficient stock")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories so a transaction can hand out the same repos
// bound to the open transaction.
type Store interface {
	Admins() Admins
	Gyms() Gyms
	Members() Members
	Packages() Packages
	Bills() Bills
	Receipts() Receipts
	Notifications() Notifications
	Products() Products
	Orders() Orders
	LoginTokens() LoginTokens
	BackupCodes() BackupCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise. Inside fn only use the tx argument.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByEmail matches case-insensitively.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// CreateAdmin returns ErrAlreadyExists when the e-mail is taken.
	CreateAdmin(ctx context.Context, a domain.Admin) error

	UpdateAdminProfile(ctx context.Context, id, name, phone string) error

	UpdateMFASecret(ctx context.Context, id string, secret string) error
	EnableMFA(ctx context.Context, id string) error

	// DisableMFA clears both mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, id string) error
}

type Gyms interface {
	GetGym(ctx context.Context, adminID string) (domain.Gym, error)
	UpsertGym(ctx context.Context, g domain.Gym) error
}

type Members interface {
	// GetMember returns ErrNotFound when the member belongs to another admin.
	GetMember(ctx context.Context, adminID, id string) (domain.Member, error)

	// GetMemberByID is unscoped; used for member sessions and the login flow.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)

	// ListMembers orders by join_date desc.
	ListMembers(ctx context.Context, adminID string) ([]domain.Member, error)

	// CreateMember returns ErrAlreadyExists when the e-mail is taken.
	CreateMember(ctx context.Context, m domain.Member) error
	UpdateMember(ctx context.Context, m domain.Member) error
	UpdateMemberContact(ctx context.Context, id, name, phone string) error

	// DeleteMember cascades to bills, receipts and notifications.
	DeleteMember(ctx context.Context, adminID, id string) error
}

type Packages interface {
	GetPackage(ctx context.Context, adminID, id string) (domain.Package, error)

	// ListPackages orders by created_at desc.
	ListPackages(ctx context.Context, adminID string) ([]domain.Package, error)
	CreatePackage(ctx context.Context, p domain.Package) error
	UpdatePackage(ctx context.Context, p domain.Package) error

	// DeletePackage detaches bills (package_id set to NULL).
	DeletePackage(ctx context.Context, adminID, id string) error
}

// BillOrder selects the sort order for ListBills.
type BillOrder int

const (
	BillsByCreatedDesc BillOrder = iota
	BillsByDueDesc
	BillsByDueAsc
)

// BillFilter narrows ListBills. Zero values mean "no constraint".
type BillFilter struct {
	AdminID     string
	MemberID    string
	Statuses    []domain.BillStatus
	CreatedFrom *time.Time // inclusive
	CreatedTo   *time.Time // inclusive
	DueBefore   *time.Time // exclusive
	OrderBy     BillOrder
	Limit       int
}

type Bills interface {
	GetBill(ctx context.Context, adminID, id string) (domain.BillView, error)
	ListBills(ctx context.Context, f BillFilter) ([]domain.BillView, error)
	CreateBill(ctx context.Context, b domain.Bill) error
	UpdateBillStatus(
		ctx context.Context,
		id string,
		status domain.BillStatus,
		paidDate *time.Time,
	) error
}

type Receipts interface {
	CreateReceipt(ctx context.Context, r domain.Receipt) error
	GetReceipt(ctx context.Context, id string) (domain.Receipt, error)
	GetReceiptByBill(ctx context.Context, billID string) (domain.Receipt, error)

	// ListReceiptsByMember orders by issued_at desc.
	ListReceiptsByMember(ctx context.Context, memberID string) ([]domain.Receipt, error)
	DeleteReceiptByBill(ctx context.Context, billID string) error
}

type Notifications interface {
	CreateNotification(ctx context.Context, n domain.Notification) error

	// ListByMember orders by created_at desc.
	ListByMember(ctx context.Context, memberID string) ([]domain.Notification, error)

	// ListByAdmin returns the newest notifications sent by the admin.
	ListByAdmin(ctx context.Context, adminID string, limit int) ([]domain.Notification, error)

	// MarkRead and Delete return ErrNotFound when the notification is not the member's.
	MarkRead(ctx context.Context, memberID, id string) error
	MarkAllRead(ctx context.Context, memberID string) (int64, error)
	DeleteNotification(ctx context.Context, memberID, id string) error
}

// ProductOrder selects the sort order for ListProducts.
type ProductOrder int

const (
	ProductsByCreatedDesc ProductOrder = iota
	ProductsBySalesDesc
)

type Products interface {
	GetProduct(ctx context.Context, adminID, id string) (domain.Product, error)

	// GetProducts returns the subset of ids that exist for the admin.
	GetProducts(ctx context.Context, adminID string, ids []string) ([]domain.Product, error)
	ListProducts(ctx context.Context, adminID string, order ProductOrder) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, adminID, id string) error

	// AdjustStock adds stockDelta to stock and salesDelta to sales in one
	// guarded statement. It returns ErrInsufficientStock instead of letting
	// stock go negative, and ErrNotFound if the product is gone.
	AdjustStock(ctx context.Context, id string, stockDelta, salesDelta int) error
}

// OrderFilter narrows ListOrders.
type OrderFilter struct {
	AdminID  string
	MemberID string
}

type Orders interface {
	// GetOrder loads the order with its items.
	GetOrder(ctx context.Context, adminID, id string) (domain.Order, error)

	// ListOrders orders by created_at desc, items included.
	ListOrders(ctx context.Context, f OrderFilter) ([]domain.Order, error)

	// CreateOrder inserts the order and its items.
	CreateOrder(ctx context.Context, o domain.Order) error

	// ReplaceOrder rewrites the header fields and swaps the item set.
	ReplaceOrder(ctx context.Context, o domain.Order) error
	UpdateOrderStatus(
		ctx context.Context,
		id string,
		status domain.OrderStatus,
		paymentStatus domain.PaymentStatus,
	) error
	DeleteOrder(ctx context.Context, adminID, id string) error
}

type LoginTokens interface {
	CreateLoginToken(ctx context.Context, t domain.LoginToken) error

	// ConsumeLoginToken marks the unused, unexpired token with the given
	// hash as used and returns it. A second call for the same hash returns
	// ErrNotFound.
	ConsumeLoginToken(
		ctx context.Context,
		tokenHash string,
		portal domain.Portal,
		now time.Time,
	) (domain.LoginToken, error)

	// DeleteStaleLoginTokens removes tokens that expired or were used before cutoff.
	DeleteStaleLoginTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

type BackupCodes interface {
	CreateBackupCode(ctx context.Context, adminID string, codeHash string) error

	// ConsumeBackupCode deletes the code and reports whether it existed.
	ConsumeBackupCode(ctx context.Context, adminID string, codeHash string) (bool, error)
	DeleteAllBackupCodes(ctx context.Context, adminID string) error
}
