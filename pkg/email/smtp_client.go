package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type smtpClient struct {
	dialer *gomail.Dialer
	config Config
}

// NewSMTPClient creates an SMTP-backed email sender. Port 587 with
// STARTTLS is the default; set StartTLS to false for implicit TLS on 465.
func NewSMTPClient(cfg Config, smtpCfg SMTPConfig) (EmailSender, error) {
	if smtpCfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP host is required", ErrInvalidConfig)
	}
	if smtpCfg.Port <= 0 {
		return nil, fmt.Errorf("%w: SMTP port must be positive", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	dialer := gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password)
	dialer.SSL = !smtpCfg.StartTLS
	dialer.TLSConfig = &tls.Config{ServerName: smtpCfg.Host}

	return &smtpClient{
		dialer: dialer,
		config: cfg,
	}, nil
}

// SendEmail implements EmailSender over plain SMTP. The dial-and-send is
// synchronous; callers bound it with a context deadline upstream.
func (c *smtpClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(c.config.SenderEmail, c.config.SenderName))
	m.SetHeader("To", params.SendTo)
	m.SetHeader("Subject", params.Subject)
	if c.config.SupportEmail != "" {
		m.SetHeader("Reply-To", c.config.SupportEmail)
	}
	if params.BodyText != "" {
		m.SetBody("text/plain", params.BodyText)
		if params.BodyHTML != "" {
			m.AddAlternative("text/html", params.BodyHTML)
		}
	} else {
		m.SetBody("text/html", params.BodyHTML)
	}

	// gomail has no context support; run the send in a goroutine so a
	// hung SMTP server surfaces as a context error instead of a stall.
	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Join(ErrFailedToSendEmail, err)
		}
		return nil
	case <-ctx.Done():
		return errors.Join(ErrFailedToSendEmail, ctx.Err())
	}
}
