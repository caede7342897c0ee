package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/mail"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

func TestParseRecipients(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Recipients{
		"all":                        RecipientsAll,
		"All Members":                RecipientsAll,
		"active":                     RecipientsActive,
		"Active Members Only":        RecipientsActive,
		"pending_bills":              RecipientsPendingBills,
		"Members with Pending Bills": RecipientsPendingBills,
	} {
		got, ok := ParseRecipients(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := ParseRecipients("everyone")
	require.False(t, ok)
}

func TestSendNotification(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	sam := e.member(t, a.ID, "sam@gym.test")
	kim := e.member(t, a.ID, "kim@gym.test")
	lee, err := e.members.Add(e.ctx, a.ID, MemberInput{Name: "Lee", Email: "lee@gym.test", Status: "inactive"})
	require.NoError(t, err)

	_, err = e.billing.CreateBill(e.ctx, a.ID, BillInput{MemberID: kim.ID, Amount: decimal.NewFromInt(100), DueDate: e.clock.Now()})
	require.NoError(t, err)

	t.Run("pending bills", func(t *testing.T) {
		res, err := e.notify.Send(e.ctx, a.ID, NotificationInput{
			Title:      "Fees due",
			Message:    "Please pay **this week**.",
			Type:       domain.NotificationPaymentReminder,
			Recipients: "Members with Pending Bills",
		})
		require.NoError(t, err)
		require.Equal(t, SendResult{Recipients: 1, EmailsSent: 1}, res)

		msg, ok := e.mail.Last(kim.Email)
		require.True(t, ok)
		require.Contains(t, msg.HTML, "<strong>this week</strong>")

		notes, err := e.notify.List(e.ctx, kim.ID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		require.Equal(t, "Payment Reminder", domain.DisplayTitle(notes[0].Type))
	})

	t.Run("active members with a failing mailbox", func(t *testing.T) {
		e.mail.Fail = func(m mail.Message) error {
			if m.To == sam.Email {
				return errors.New("mailbox full")
			}
			return nil
		}
		t.Cleanup(func() { e.mail.Fail = nil })

		res, err := e.notify.Send(e.ctx, a.ID, NotificationInput{
			Title:      "Closed Monday",
			Message:    "Public holiday.",
			Recipients: "active",
		})
		require.NoError(t, err)
		require.Equal(t, SendResult{Recipients: 2, EmailsSent: 1, EmailsFailed: 1}, res)

		notes, err := e.notify.List(e.ctx, lee.ID)
		require.NoError(t, err)
		require.Empty(t, notes)

		notes, err = e.notify.List(e.ctx, sam.ID)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		require.Equal(t, domain.NotificationAnnouncement, notes[0].Type)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := e.notify.Send(e.ctx, a.ID, NotificationInput{Title: "x", Message: "y", Recipients: "nobody"})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = e.notify.Send(e.ctx, a.ID, NotificationInput{Message: "y", Recipients: "all"})
		require.ErrorIs(t, err, ErrInvalidInput)

		empty := e.admin(t, "empty@gym.test")
		_, err = e.notify.Send(e.ctx, empty.ID, NotificationInput{Title: "x", Message: "y", Recipients: "all"})
		require.ErrorIs(t, err, ErrNoRecipients)
	})

	t.Run("sent list", func(t *testing.T) {
		sent, err := e.notify.ListSent(e.ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, sent, 3)
	})
}

func TestMemberNotifications(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	sam := e.member(t, a.ID, "sam@gym.test")
	kim := e.member(t, a.ID, "kim@gym.test")

	for range 3 {
		_, err := e.notify.Send(e.ctx, a.ID, NotificationInput{Title: "Hi", Message: "Hello", Recipients: "all"})
		require.NoError(t, err)
	}

	notes, err := e.notify.List(e.ctx, sam.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	require.NoError(t, e.notify.MarkRead(e.ctx, sam.ID, notes[0].ID))
	require.ErrorIs(t, e.notify.MarkRead(e.ctx, kim.ID, notes[0].ID), store.ErrNotFound)

	n, err := e.notify.MarkAllRead(e.ctx, sam.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, e.notify.Delete(e.ctx, sam.ID, notes[1].ID))
	require.ErrorIs(t, e.notify.Delete(e.ctx, sam.ID, notes[1].ID), store.ErrNotFound)

	notes, err = e.notify.List(e.ctx, sam.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	for _, n := range notes {
		require.True(t, n.Read)
	}
}
