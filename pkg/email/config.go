package email

// Config holds email transport configuration. Provider credentials are
// optional to support development environments where sending is disabled;
// SenderEmail and SupportEmail are required as they establish the sender
// identity and reply-to behavior for all outbound mail.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SenderName           string `env:"SENDER_NAME" envDefault:"Solara AI"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}

// SMTPConfig holds configuration for the SMTP transport.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	StartTLS bool   `env:"SMTP_STARTTLS" envDefault:"true"`
}
