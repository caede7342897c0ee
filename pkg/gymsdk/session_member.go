package gymsdk

import (
	"context"
	"mime"
	"net/http"
)

func (s *Session) GetMemberProfile(ctx context.Context) (*MemberProfile, error) {
	var out MemberProfile
	if err := s.call(ctx, http.MethodGet, "/v1/member/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateMemberProfile(ctx context.Context, req UpdateProfileRequest) (*MemberProfile, error) {
	var out MemberProfile
	if err := s.call(ctx, http.MethodPatch, "/v1/member/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) MemberDashboard(ctx context.Context) (*MemberDashboard, error) {
	var out MemberDashboard
	if err := s.call(ctx, http.MethodGet, "/v1/member/dashboard", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) MyBills(ctx context.Context) ([]Bill, error) {
	var out []Bill
	if err := s.call(ctx, http.MethodGet, "/v1/member/bills", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MyReceipts(ctx context.Context) ([]Receipt, error) {
	var out []Receipt
	if err := s.call(ctx, http.MethodGet, "/v1/member/receipts", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetReceipt(ctx context.Context, id string) (*Receipt, error) {
	var out Receipt
	if err := s.call(ctx, http.MethodGet, "/v1/member/receipts/"+escape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) MyNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.call(ctx, http.MethodGet, "/v1/member/notifications", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MarkNotificationRead(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodPost, "/v1/member/notifications/"+escape(id)+"/read", nil, nil, http.StatusNoContent)
}

func (s *Session) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	var out MarkAllReadResponse
	if err := s.call(ctx, http.MethodPost, "/v1/member/notifications/read-all", nil, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/member/notifications/"+escape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) PlaceOrder(ctx context.Context, items ...OrderItemRequest) (*Order, error) {
	var out Order
	err := s.call(ctx, http.MethodPost, "/v1/member/orders", PlaceOrderRequest{Items: items}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func attachmentName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
