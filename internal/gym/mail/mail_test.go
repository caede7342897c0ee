package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginLink(t *testing.T) {
	t.Parallel()

	msg, err := LoginLink("a@example.com", "ADMIN", "https://gym.test/signin?token=abc&type=ADMIN", "1h0m0s")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", msg.To)
	require.Equal(t, "ADMIN Login Link - Gym Management", msg.Subject)
	require.Contains(t, msg.HTML, `href="https://gym.test/signin?token=abc&amp;type=ADMIN"`)
	require.Contains(t, msg.Text, "token=abc&type=ADMIN")
}

func TestNotificationRendersMarkdownSafely(t *testing.T) {
	t.Parallel()

	msg, err := Notification("m@example.com", "Holiday hours", "We close **early** on Friday.\n<script>alert(1)</script>", "General Announcement", "Iron Temple")
	require.NoError(t, err)
	require.Equal(t, "Holiday hours", msg.Subject)
	require.Contains(t, msg.HTML, "<strong>early</strong>")
	require.NotContains(t, msg.HTML, "<script>")
	require.Contains(t, msg.HTML, "General Announcement")
	require.Contains(t, msg.HTML, "Iron Temple")
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	r := &Recorder{}
	ctx := context.Background()
	require.ErrorIs(t, r.Send(ctx, Message{}), ErrNoRecipient)

	require.NoError(t, r.Send(ctx, Message{To: "a", Subject: "1"}))
	require.NoError(t, r.Send(ctx, Message{To: "b", Subject: "2"}))
	require.NoError(t, r.Send(ctx, Message{To: "a", Subject: "3"}))

	last, ok := r.Last("a")
	require.True(t, ok)
	require.Equal(t, "3", last.Subject)
	require.Len(t, r.Sent(), 3)

	boom := errors.New("smtp down")
	r.Fail = func(m Message) error {
		if m.To == "b" {
			return boom
		}
		return nil
	}
	require.ErrorIs(t, r.Send(ctx, Message{To: "b"}), boom)
	require.Len(t, r.Sent(), 3)
}

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	t.Parallel()

	_, err := NewSMTPSender(SMTPConfig{})
	require.Error(t, err)

	s, err := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 2525, From: "gym@example.com"})
	require.NoError(t, err)
	require.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNoRecipient)
}
