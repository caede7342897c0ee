package gymsdk

import (
	"time"

	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// MessageResponse is returned by endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the public key set used to verify session tokens.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Sign-in
// ============================================================================

// Portal types accepted by the sign-in endpoints.
const (
	PortalAdmin  = "ADMIN"
	PortalMember = "MEMBER"
)

type RequestLinkRequest struct {
	Email string `json:"email"`
	Type  string `json:"type"` // ADMIN or MEMBER
}

type ExchangeRequest struct {
	Token string `json:"token"`
	Type  string `json:"type"`

	// OTP is a TOTP or backup code. Required for admins with MFA enabled.
	OTP string `json:"otp,omitempty"`
}

type SessionResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"`
	User        SessionUser `json:"user"`
}

type SessionUser struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	TenantID string    `json:"tenantId"`
	Expires  time.Time `json:"expires,omitzero"`
}

type TOTPEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	Issuer     string `json:"issuer"`
	Account    string `json:"account"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

type BackupCodesResponse struct {
	BackupCodes []string `json:"backup_codes"`
}

// ============================================================================
// Admins and gym
// ============================================================================

type CreateAdminRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	GymName string `json:"gymName,omitempty"`
}

type AdminProfile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	MFAEnabled bool      `json:"mfaEnabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type GymSettings struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ============================================================================
// Members and packages
// ============================================================================

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	JoinDate  time.Time `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateMemberRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	Status   string     `json:"status,omitempty"`
	JoinDate *time.Time `json:"joinDate,omitempty"`
}

type UpdateMemberRequest struct {
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Phone    *string    `json:"phone,omitempty"`
	Status   *string    `json:"status,omitempty"`
	JoinDate *time.Time `json:"joinDate,omitempty"`
}

type MemberProfile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Status   string    `json:"status"`
	JoinDate time.Time `json:"joinDate"`
	GymName  string    `json:"gymName"`
}

type Package struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
	Features     []string        `json:"features"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type CreatePackageRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
	Features     []string        `json:"features,omitempty"`
}

type UpdatePackageRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	BillingCycle *string          `json:"billingCycle,omitempty"`
	Features     *[]string        `json:"features,omitempty"`
	IsActive     *bool            `json:"isActive,omitempty"`
}

// ============================================================================
// Bills and receipts
// ============================================================================

type Bill struct {
	ID          string          `json:"id"`
	MemberID    string          `json:"memberId"`
	MemberName  string          `json:"memberName"`
	MemberEmail string          `json:"memberEmail"`
	PackageID   *string         `json:"packageId"`
	PackageName string          `json:"packageName"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      string          `json:"status"`
	PaidDate    *time.Time      `json:"paidDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	Receipt     bool            `json:"receipt"`
	ReceiptID   *string         `json:"receiptId"`
}

type CreateBillRequest struct {
	MemberID      string          `json:"memberId"`
	PackageID     *string         `json:"packageId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	Status        string          `json:"status,omitempty"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type UpdateBillStatusRequest struct {
	Status        string     `json:"status"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type Receipt struct {
	ID            string          `json:"id"`
	ReceiptNo     string          `json:"receiptNo"`
	BillID        string          `json:"billId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	IssuedAt      time.Time       `json:"issuedAt"`
	DueDate       time.Time       `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate"`

	PackageName  string `json:"packageName"`
	BillingCycle string `json:"billingCycle"`

	MemberID    string `json:"memberId"`
	MemberName  string `json:"memberName"`
	MemberEmail string `json:"memberEmail"`

	Gym GymSettings `json:"gym"`
}

// ============================================================================
// Notifications
// ============================================================================

// Recipient groups for SendNotificationRequest.
const (
	RecipientsAll          = "all"
	RecipientsActive       = "active"
	RecipientsPendingBills = "pending_bills"
)

type Notification struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"memberId"`
	Title        string    `json:"title"`
	DisplayTitle string    `json:"displayTitle"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SendNotificationRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Recipients string `json:"recipients"`
}

type SendNotificationResponse struct {
	Message      string `json:"message"`
	Recipients   int    `json:"recipients"`
	EmailsSent   int    `json:"emailsSent"`
	EmailsFailed int    `json:"emailsFailed"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ============================================================================
// Supplement store
// ============================================================================

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Sales       int             `json:"sales"`
	InStock     bool            `json:"inStock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

type Order struct {
	ID            string          `json:"id"`
	MemberID      *string         `json:"memberId"`
	MemberName    string          `json:"memberName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is used by admins for both create and update.
type CreateOrderRequest struct {
	MemberName string             `json:"memberName"`
	MemberID   *string            `json:"memberId,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// ============================================================================
// Reports
// ============================================================================

// CustomReportRequest selects a report and period. Start and End are
// only read when DateRange is "custom".
type CustomReportRequest struct {
	ReportType string     `json:"reportType"`
	DateRange  string     `json:"dateRange"`
	Start      *time.Time `json:"startDate,omitempty"`
	End        *time.Time `json:"endDate,omitempty"`
}

type ExportReportRequest struct {
	CustomReportRequest

	Format string `json:"format"` // csv or xlsx
}

type PaymentSummary struct {
	Collected      decimal.Decimal `json:"collected"`
	Pending        decimal.Decimal `json:"pending"`
	Overdue        decimal.Decimal `json:"overdue"`
	Total          decimal.Decimal `json:"total"`
	CollectedCount int             `json:"collectedCount"`
	PendingCount   int             `json:"pendingCount"`
	OverdueCount   int             `json:"overdueCount"`
	CollectionRate float64         `json:"collectionRate"`
}

type TopProduct struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
	Stock   int             `json:"stock"`
}

type StoreAnalytics struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalSales     int             `json:"totalSales"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	RevenueGrowth  float64         `json:"revenueGrowth"`
	TopProducts    []TopProduct    `json:"topProducts"`
	ActiveProducts int             `json:"activeProducts"`
	TotalOrders    int             `json:"totalOrders"`
}

type ChartPoint struct {
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
	Members int             `json:"members"`
}

type AdminDashboard struct {
	TotalMembers   int             `json:"totalMembers"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	PendingBills   int             `json:"pendingBills"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	OverdueBills   int             `json:"overdueBills"`
	Chart          []ChartPoint    `json:"chartData"`
}

type CurrentPackage struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
}

type DueBill struct {
	BillID  string          `json:"billId"`
	DueDate time.Time       `json:"dueDate"`
	Amount  decimal.Decimal `json:"amount"`
}

type BillSummary struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PackageName string          `json:"packageName"`
	DueDate     time.Time       `json:"dueDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type MemberDashboard struct {
	Name               string          `json:"name"`
	Status             string          `json:"status"`
	JoinDate           time.Time       `json:"joinDate"`
	CurrentPackage     *CurrentPackage `json:"currentPackage"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	NextBillDue        *DueBill        `json:"nextBillDue"`
	RecentBills        []BillSummary   `json:"recentBills"`
	GymName            string          `json:"gymName"`
}
