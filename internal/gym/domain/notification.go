package domain

import "time"

// Known notification types. Admins may send free-form types too.
const (
	NotificationPaymentReminder     = "payment_reminder"
	NotificationPaymentConfirmation = "payment_confirmation"
	NotificationSuspensionNotice    = "suspension_notice"
	NotificationSpecialOffer        = "special_offer"
	NotificationMonthlyFee          = "Monthly Fee"
	NotificationOverduePayment      = "Overdue Payment"
	NotificationAnnouncement        = "General Announcement"
)

type Notification struct {
	ID        string
	AdminID   string
	MemberID  string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
}

// DisplayTitle is the heading the member portal shows for a notification type.
func DisplayTitle(notificationType string) string {
	switch notificationType {
	case NotificationPaymentReminder:
		return "Payment Reminder"
	case NotificationPaymentConfirmation:
		return "Payment Received"
	case NotificationSuspensionNotice:
		return "Account Notice"
	case NotificationSpecialOffer:
		return "Special Offer"
	case NotificationMonthlyFee:
		return "Monthly Fee Reminder"
	case NotificationOverduePayment:
		return "Overdue Payment"
	case NotificationAnnouncement:
		return "Announcement"
	default:
		return "Notification"
	}
}
