package http

import (
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/service"
	"github.com/aussiebroadwan/gymdesk/pkg/gymsdk"
	"github.com/aussiebroadwan/gymdesk/pkg/jwtx"
)

// mapAll converts a slice, returning an empty (not nil) slice so lists
// encode as [].
func mapAll[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func portalType(scopes []string) string {
	for _, s := range scopes {
		if s == service.ScopeAdmin {
			return gymsdk.PortalAdmin
		}
	}
	return gymsdk.PortalMember
}

func sessionUser(c jwtx.Claims) gymsdk.SessionUser {
	u := gymsdk.SessionUser{
		ID:       c.Subject,
		Email:    c.Email,
		Name:     c.Name,
		Type:     portalType(c.Scopes),
		TenantID: c.Tenant,
	}
	if c.ExpiresAt != nil {
		u.Expires = c.ExpiresAt.UTC()
	}
	return u
}

func sessionResponse(s service.Session) gymsdk.SessionResponse {
	return gymsdk.SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ExpiresIn / time.Second),
		User:        sessionUser(s.Claims),
	}
}

func adminProfile(a domain.Admin) gymsdk.AdminProfile {
	return gymsdk.AdminProfile{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Name,
		Phone:      a.Phone,
		MFAEnabled: a.HasMFA(),
		CreatedAt:  a.CreatedAt,
	}
}

func gymSettings(g domain.Gym) gymsdk.GymSettings {
	out := gymsdk.GymSettings{
		Name:    g.Name,
		Email:   g.Email,
		Phone:   g.Phone,
		Address: g.Address,
	}
	if !g.UpdatedAt.IsZero() {
		t := g.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func member(m domain.Member) gymsdk.Member {
	return gymsdk.Member{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Status:    string(m.Status),
		JoinDate:  m.JoinDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func memberProfile(p service.MemberProfile) gymsdk.MemberProfile {
	return gymsdk.MemberProfile{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Status:   string(p.Status),
		JoinDate: p.JoinDate,
		GymName:  p.GymName,
	}
}

func pkg(p domain.Package) gymsdk.Package {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return gymsdk.Package{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		BillingCycle: p.BillingCycle,
		Features:     features,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func bill(b domain.BillView) gymsdk.Bill {
	return gymsdk.Bill{
		ID:          b.ID,
		MemberID:    b.MemberID,
		MemberName:  b.MemberName,
		MemberEmail: b.MemberEmail,
		PackageID:   b.PackageID,
		PackageName: b.PackageName,
		Amount:      b.Amount,
		DueDate:     b.DueDate,
		Status:      string(b.Status),
		PaidDate:    b.PaidDate,
		CreatedAt:   b.CreatedAt,
		Receipt:     b.ReceiptID != nil,
		ReceiptID:   b.ReceiptID,
	}
}

func receipt(d service.ReceiptDetail) gymsdk.Receipt {
	return gymsdk.Receipt{
		ID:            d.Receipt.ID,
		ReceiptNo:     d.Receipt.ReceiptNo,
		BillID:        d.Receipt.BillID,
		Amount:        d.Receipt.Amount,
		PaymentMethod: d.Receipt.PaymentMethod,
		Notes:         d.Receipt.Notes,
		IssuedAt:      d.Receipt.IssuedAt,
		DueDate:       d.Bill.DueDate,
		PaidDate:      d.Bill.PaidDate,
		PackageName:   d.Bill.PackageName,
		BillingCycle:  d.Bill.PackageBillingCycle,
		MemberID:      d.Bill.MemberID,
		MemberName:    d.Bill.MemberName,
		MemberEmail:   d.Bill.MemberEmail,
		Gym:           gymSettings(d.Gym),
	}
}

func notification(n domain.Notification) gymsdk.Notification {
	return gymsdk.Notification{
		ID:           n.ID,
		MemberID:     n.MemberID,
		Title:        n.Title,
		DisplayTitle: domain.DisplayTitle(n.Type),
		Message:      n.Message,
		Type:         n.Type,
		Read:         n.Read,
		CreatedAt:    n.CreatedAt,
	}
}

func product(p domain.Product) gymsdk.Product {
	return gymsdk.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Stock:       p.Stock,
		Sales:       p.Sales,
		InStock:     p.InStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func order(o domain.Order) gymsdk.Order {
	return gymsdk.Order{
		ID:            o.ID,
		MemberID:      o.MemberID,
		MemberName:    o.MemberName,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Items: mapAll(o.Items, func(i domain.OrderItem) gymsdk.OrderItem {
			return gymsdk.OrderItem{
				ID:          i.ID,
				ProductID:   i.ProductID,
				ProductName: i.ProductName,
				Quantity:    i.Quantity,
				Price:       i.Price,
			}
		}),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func itemInputs(in []gymsdk.OrderItemRequest) []service.ItemInput {
	return mapAll(in, func(i gymsdk.OrderItemRequest) service.ItemInput {
		return service.ItemInput{ProductID: i.ProductID, Quantity: i.Quantity}
	})
}

func customInput(req gymsdk.CustomReportRequest) service.CustomReportInput {
	return service.CustomReportInput{
		ReportType: req.ReportType,
		DateRange:  req.DateRange,
		Start:      req.Start,
		End:        req.End,
	}
}
