package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/solara-ai/notify/pkg/email"
)

// AddressResolver looks up the destination email address for a user. The
// lookup is external to this package (user profile store). An unresolvable
// address is a delivery failure, not a silent no-op.
type AddressResolver interface {
	EmailAddress(ctx context.Context, userID string) (string, error)
}

// EmailSender delivers notifications over the email channel: it renders a
// type-specific subject/HTML/text template from the notification payload
// and hands off to an email transport.
type EmailSender struct {
	transport email.EmailSender
	resolver  AddressResolver
	baseURL   string
	timeout   time.Duration
}

// EmailSenderOption configures an EmailSender.
type EmailSenderOption func(*EmailSender)

// WithBaseURL sets the frontend base URL used for call-to-action links.
func WithBaseURL(url string) EmailSenderOption {
	return func(s *EmailSender) {
		s.baseURL = url
	}
}

// WithSendTimeout bounds a single transport send. A transport that hangs
// must surface as a delivery failure, not stall the dispatch.
func WithSendTimeout(d time.Duration) EmailSenderOption {
	return func(s *EmailSender) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewEmailSender creates the email channel sender.
func NewEmailSender(transport email.EmailSender, resolver AddressResolver, opts ...EmailSenderOption) *EmailSender {
	s := &EmailSender{
		transport: transport,
		resolver:  resolver,
		baseURL:   "https://app.solara.ai",
		timeout:   15 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *EmailSender) Send(ctx context.Context, notif Notification) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr, err := s.resolver.EmailAddress(ctx, notif.UserID)
	if err != nil {
		return NewDeliveryError(ChannelEmail, fmt.Errorf("resolve address for user %s: %w", notif.UserID, err))
	}
	if addr == "" {
		return NewDeliveryError(ChannelEmail, fmt.Errorf("no email address for user %s", notif.UserID))
	}

	content, err := renderEmail(notif, s.baseURL)
	if err != nil {
		return NewDeliveryError(ChannelEmail, fmt.Errorf("render template: %w", err))
	}

	if err := s.transport.SendEmail(ctx, email.SendEmailParams{
		SendTo:   addr,
		Subject:  content.Subject,
		BodyHTML: content.HTML,
		BodyText: content.Text,
		Tag:      string(notif.Type),
	}); err != nil {
		return NewDeliveryError(ChannelEmail, err)
	}

	return nil
}
