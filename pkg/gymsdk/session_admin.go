package gymsdk

import (
	"context"
	"net/http"
	"strconv"
)

// ============================================================================
// Profile, gym and MFA
// ============================================================================

func (s *Session) GetAdminProfile(ctx context.Context) (*AdminProfile, error) {
	var out AdminProfile
	if err := s.call(ctx, http.MethodGet, "/v1/admin/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateAdminProfile(ctx context.Context, req UpdateProfileRequest) (*AdminProfile, error) {
	var out AdminProfile
	if err := s.call(ctx, http.MethodPatch, "/v1/admin/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetGym(ctx context.Context) (*GymSettings, error) {
	var out GymSettings
	if err := s.call(ctx, http.MethodGet, "/v1/admin/gym", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateGym(ctx context.Context, req GymSettings) (*GymSettings, error) {
	var out GymSettings
	if err := s.call(ctx, http.MethodPut, "/v1/admin/gym", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	var out TOTPEnrollResponse
	if err := s.call(ctx, http.MethodPost, "/v1/admin/mfa/totp/enroll", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTOTP enables MFA and returns the initial backup codes.
func (s *Session) VerifyTOTP(ctx context.Context, code string) (*BackupCodesResponse, error) {
	var out BackupCodesResponse
	err := s.call(ctx, http.MethodPost, "/v1/admin/mfa/totp/verify", TOTPCodeRequest{Code: code}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DisableTOTP(ctx context.Context, code string) error {
	return s.call(ctx, http.MethodPost, "/v1/admin/mfa/totp/disable", TOTPCodeRequest{Code: code}, nil, http.StatusNoContent)
}

// RegenerateBackupCodes replaces every backup code; code is a current TOTP code.
func (s *Session) RegenerateBackupCodes(ctx context.Context, code string) (*BackupCodesResponse, error) {
	var out BackupCodesResponse
	err := s.call(ctx, http.MethodPost, "/v1/admin/mfa/backup-codes", TOTPCodeRequest{Code: code}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Members and packages
// ============================================================================

func (s *Session) ListMembers(ctx context.Context) ([]Member, error) {
	var out []Member
	if err := s.call(ctx, http.MethodGet, "/v1/admin/members", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateMember(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	var out Member
	if err := s.call(ctx, http.MethodPost, "/v1/admin/members", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetMember(ctx context.Context, id string) (*Member, error) {
	var out Member
	if err := s.call(ctx, http.MethodGet, "/v1/admin/members/"+escape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*Member, error) {
	var out Member
	if err := s.call(ctx, http.MethodPatch, "/v1/admin/members/"+escape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteMember(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/admin/members/"+escape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ListPackages(ctx context.Context) ([]Package, error) {
	var out []Package
	if err := s.call(ctx, http.MethodGet, "/v1/admin/packages", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreatePackage(ctx context.Context, req CreatePackageRequest) (*Package, error) {
	var out Package
	if err := s.call(ctx, http.MethodPost, "/v1/admin/packages", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*Package, error) {
	var out Package
	if err := s.call(ctx, http.MethodPatch, "/v1/admin/packages/"+escape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeletePackage(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/admin/packages/"+escape(id), nil, nil, http.StatusNoContent)
}

// ============================================================================
// Billing
// ============================================================================

// ListBills returns the latest bills by due date. limit <= 0 uses the
// server default.
func (s *Session) ListBills(ctx context.Context, limit int) ([]Bill, error) {
	path := "/v1/admin/bills"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []Bill
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateBill(ctx context.Context, req CreateBillRequest) (*Bill, error) {
	var out Bill
	if err := s.call(ctx, http.MethodPost, "/v1/admin/bills", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateBillStatus(ctx context.Context, id string, req UpdateBillStatusRequest) (*Bill, error) {
	var out Bill
	err := s.call(ctx, http.MethodPatch, "/v1/admin/bills/"+escape(id)+"/status", req, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetBillReceipt(ctx context.Context, billID string) (*Receipt, error) {
	var out Receipt
	err := s.call(ctx, http.MethodGet, "/v1/admin/bills/"+escape(billID)+"/receipt", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Notifications, dashboard and reports
// ============================================================================

func (s *Session) SendNotification(ctx context.Context, req SendNotificationRequest) (*SendNotificationResponse, error) {
	var out SendNotificationResponse
	if err := s.call(ctx, http.MethodPost, "/v1/admin/notifications", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListSentNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.call(ctx, http.MethodGet, "/v1/admin/notifications", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	var out AdminDashboard
	if err := s.call(ctx, http.MethodGet, "/v1/admin/dashboard", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) PaymentSummary(ctx context.Context) (*PaymentSummary, error) {
	var out PaymentSummary
	if err := s.call(ctx, http.MethodGet, "/v1/admin/reports/payments", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report fetches one of the named report endpoints under /v1/admin/reports
// into out, e.g. "overview" or "revenue-by-package".
func (s *Session) Report(ctx context.Context, name string, out any) error {
	return s.call(ctx, http.MethodGet, "/v1/admin/reports/"+escape(name), nil, out, http.StatusOK)
}

func (s *Session) CustomReport(ctx context.Context, req CustomReportRequest, out any) error {
	return s.call(ctx, http.MethodPost, "/v1/admin/reports/custom", req, out, http.StatusOK)
}

// ExportReport returns the raw file bytes and the server-chosen file name.
func (s *Session) ExportReport(ctx context.Context, req ExportReportRequest) ([]byte, string, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/admin/reports/export", req)
	if err != nil {
		return nil, "", err
	}
	name := attachmentName(resp.Header.Get("Content-Disposition"))
	body, err := readBody(resp, http.StatusOK)
	if err != nil {
		return nil, "", err
	}
	return body, name, nil
}

// ============================================================================
// Store
// ============================================================================

func (s *Session) ListProducts(ctx context.Context) ([]Product, error) {
	path := "/v1/member/products"
	if s.IsAdmin() {
		path = "/v1/admin/products"
	}
	var out []Product
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var out Product
	if err := s.call(ctx, http.MethodPost, "/v1/admin/products", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	var out Product
	if err := s.call(ctx, http.MethodPatch, "/v1/admin/products/"+escape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteProduct(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/admin/products/"+escape(id), nil, nil, http.StatusNoContent)
}

// ListOrders lists the tenant's orders for admins and the member's own
// orders otherwise.
func (s *Session) ListOrders(ctx context.Context) ([]Order, error) {
	path := "/v1/member/orders"
	if s.IsAdmin() {
		path = "/v1/admin/orders"
	}
	var out []Order
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var out Order
	if err := s.call(ctx, http.MethodPost, "/v1/admin/orders", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateOrder(ctx context.Context, id string, req CreateOrderRequest) (*Order, error) {
	var out Order
	if err := s.call(ctx, http.MethodPut, "/v1/admin/orders/"+escape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateOrderStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) (*Order, error) {
	var out Order
	err := s.call(ctx, http.MethodPatch, "/v1/admin/orders/"+escape(id)+"/status", req, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteOrder(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/admin/orders/"+escape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) StoreAnalytics(ctx context.Context) (*StoreAnalytics, error) {
	var out StoreAnalytics
	if err := s.call(ctx, http.MethodGet, "/v1/admin/store/analytics", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
