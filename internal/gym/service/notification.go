package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/idx"
	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

// Recipients selects which members an admin notification goes to.
type Recipients string

const (
	RecipientsAll          Recipients = "all"
	RecipientsActive       Recipients = "active"
	RecipientsPendingBills Recipients = "pending_bills"

	sentNotificationLimit = 50
)

// ParseRecipients accepts the short keys and the labels the admin portal
// shows ("All Members", "Active Members Only", "Members with Pending Bills").
func ParseRecipients(s string) (Recipients, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "all members":
		return RecipientsAll, true
	case "active", "active members only":
		return RecipientsActive, true
	case "pending_bills", "members with pending bills":
		return RecipientsPendingBills, true
	}
	return "", false
}

type NotificationService struct {
	Store  store.Store
	Mailer mail.Sender
	Clock  Clock
}

type NotificationInput struct {
	Title      string
	Message    string // markdown
	Type       string
	Recipients string
}

type SendResult struct {
	Recipients   int
	EmailsSent   int
	EmailsFailed int
}

// Send stores a notification for every matching member and mails each of
// them. Mail failures are counted, not returned.
func (s *NotificationService) Send(ctx context.Context, adminID string, in NotificationInput) (SendResult, error) {
	log := slogx.FromContext(ctx)

	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Message)
	kind := strings.TrimSpace(in.Type)
	if title == "" || body == "" {
		return SendResult{}, invalid("title and message are required")
	}
	if kind == "" {
		kind = domain.NotificationAnnouncement
	}
	who, ok := ParseRecipients(in.Recipients)
	if !ok {
		return SendResult{}, invalid("recipients must be all, active or pending_bills")
	}

	members, err := s.recipients(ctx, adminID, who)
	if err != nil {
		return SendResult{}, err
	}
	if len(members) == 0 {
		return SendResult{}, ErrNoRecipients
	}

	now := s.Clock.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, m := range members {
			err := tx.Notifications().CreateNotification(ctx, domain.Notification{
				ID:        idx.NewAt(now).String(),
				AdminID:   adminID,
				MemberID:  m.ID,
				Title:     title,
				Message:   body,
				Type:      kind,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SendResult{}, err
	}

	res := SendResult{Recipients: len(members)}
	gym := gymName(ctx, s.Store, adminID)
	for _, m := range members {
		msg, err := mail.Notification(m.Email, title, body, kind, gym)
		if err == nil {
			err = s.Mailer.Send(ctx, msg)
		}
		if err != nil {
			res.EmailsFailed++
			log.Warn("notification mail failed", slog.String("member_id", m.ID), slog.Any("error", err))
			continue
		}
		res.EmailsSent++
	}

	log.Info("notification sent",
		slog.String("type", kind),
		slog.String("recipients", string(who)),
		slog.Int("count", res.Recipients),
		slog.Int("emails_failed", res.EmailsFailed),
	)
	return res, nil
}

func (s *NotificationService) recipients(ctx context.Context, adminID string, who Recipients) ([]domain.Member, error) {
	members, err := s.Store.Members().ListMembers(ctx, adminID)
	if err != nil {
		return nil, err
	}

	var keep func(domain.Member) bool
	switch who {
	case RecipientsActive:
		keep = func(m domain.Member) bool { return m.Status == domain.MemberActive }
	case RecipientsPendingBills:
		pending, err := s.Store.Bills().ListBills(ctx, store.BillFilter{
			AdminID:  adminID,
			Statuses: []domain.BillStatus{domain.BillPending},
		})
		if err != nil {
			return nil, err
		}
		owing := make(map[string]bool, len(pending))
		for _, b := range pending {
			owing[b.MemberID] = true
		}
		keep = func(m domain.Member) bool { return owing[m.ID] }
	default:
		return members, nil
	}

	out := members[:0]
	for _, m := range members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListSent returns the newest notifications the admin sent.
func (s *NotificationService) ListSent(ctx context.Context, adminID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListByAdmin(ctx, adminID, sentNotificationLimit)
}

func (s *NotificationService) List(ctx context.Context, memberID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListByMember(ctx, memberID)
}

func (s *NotificationService) MarkRead(ctx context.Context, memberID, id string) error {
	return s.Store.Notifications().MarkRead(ctx, memberID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, memberID string) (int64, error) {
	return s.Store.Notifications().MarkAllRead(ctx, memberID)
}

func (s *NotificationService) Delete(ctx context.Context, memberID, id string) error {
	return s.Store.Notifications().DeleteNotification(ctx, memberID, id)
}
