package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local development. It saves emails
// as HTML and JSON files to a directory instead of sending them.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves emails to
// disk. The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir}
}

// devEmailMetadata is the email envelope saved alongside the HTML body.
type devEmailMetadata struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	BodyText  string `json:"body_text,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// SendEmail saves the email as an HTML file plus a JSON metadata file.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	meta, err := json.MarshalIndent(devEmailMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		BodyText:  params.BodyText,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(jsonPath, meta, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts an arbitrary identifier into a safe, bounded
// filename fragment.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
