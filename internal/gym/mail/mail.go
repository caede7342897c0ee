// Package mail delivers sign-in links and member notifications.
package mail

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/gymdesk/pkg/slogx"
)

var ErrNoRecipient = errors.New("mail: message has no recipient")

// Message is a rendered e-mail. HTML is required, Text is the plain
// alternative part and may be empty.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the request logger instead of delivering
// them. It is used when SMTP is not configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	slogx.FromContext(ctx).Info("mail_not_sent_smtp_disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}

// Recorder keeps sent messages in memory. Fail, when set, is consulted
// before a message is recorded and its error returned.
type Recorder struct {
	mu   sync.Mutex
	sent []Message

	Fail func(Message) error
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if r.Fail != nil {
		if err := r.Fail(msg); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent message sent to addr.
func (r *Recorder) Last(addr string) (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		if r.sent[i].To == addr {
			return r.sent[i], true
		}
	}
	return Message{}, false
}
