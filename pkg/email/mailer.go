package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`             // Email address of the recipient
	Subject  string `json:"subject"`             // Subject of the email
	BodyHTML string `json:"body_html"`           // HTML body of the email
	BodyText string `json:"body_text,omitempty"` // Plain-text alternative body
	Tag      string `json:"tag,omitempty"`       // Optional delivery analytics tag
}

// emailRegex is a pragmatic format check; real validation happens at the
// provider.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the minimum required fields before handing off to a
// transport.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: recipient %q is not a valid email address", ErrInvalidParams, p.SendTo)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" && p.BodyText == "" {
		return fmt.Errorf("%w: a body is required", ErrInvalidParams)
	}
	return nil
}
