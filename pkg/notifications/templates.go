package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// emailContent is a fully rendered email for one notification.
type emailContent struct {
	Subject string
	HTML    string
	Text    string
}

// emailData feeds the shared layout template. Per-type builders fill it
// from the notification payload; unknown types fall back to a plain
// title/message passthrough rather than failing.
type emailData struct {
	Heading  string
	Lines    []string
	CTALabel string
	CTAURL   string
}

var emailLayout = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Heading}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; margin: 0; background-color: #f8fafc; }
.container { max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; }
.header { background: linear-gradient(135deg, #8b5cf6 0%, #a855f7 100%); padding: 32px 24px; text-align: center; }
.header h1 { color: white; margin: 0; font-size: 24px; }
.content { padding: 32px 24px; }
.button { display: inline-block; background: #8b5cf6; color: white; text-decoration: none; padding: 12px 24px; border-radius: 8px; font-weight: 600; }
.footer { background: #f8fafc; padding: 24px; text-align: center; font-size: 14px; color: #6b7280; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>{{.Heading}}</h1></div>
<div class="content">
{{range .Lines}}<p>{{.}}</p>
{{end}}{{if .CTAURL}}<div style="text-align: center; margin: 32px 0;"><a href="{{.CTAURL}}" class="button">{{.CTALabel}}</a></div>
{{end}}</div>
<div class="footer"><p>&copy; Solara AI. All rights reserved.</p></div>
</div>
</body>
</html>
`))

func renderEmail(notif Notification, baseURL string) (emailContent, error) {
	subject, data := buildEmail(notif, baseURL)

	var buf bytes.Buffer
	if err := emailLayout.Execute(&buf, data); err != nil {
		return emailContent{}, err
	}

	return emailContent{
		Subject: subject,
		HTML:    buf.String(),
		Text:    renderText(data),
	}, nil
}

// renderText produces the plain-text alternative from the same layout data.
func renderText(data emailData) string {
	var sb strings.Builder
	sb.WriteString(data.Heading)
	sb.WriteString("\n\n")
	for _, line := range data.Lines {
		sb.WriteString(line)
		sb.WriteString("\n\n")
	}
	if data.CTAURL != "" {
		fmt.Fprintf(&sb, "%s: %s\n\n", data.CTALabel, data.CTAURL)
	}
	sb.WriteString("---\n© Solara AI. All rights reserved.\n")
	return sb.String()
}

func buildEmail(notif Notification, baseURL string) (string, emailData) {
	switch notif.Type {
	case TypeCampaignCompleted:
		campaignID := notif.CampaignID()
		return "🎉 Your Campaign is Ready! - Solara AI", emailData{
			Heading: "🎉 Campaign Complete!",
			Lines: []string{
				"Great news! Your campaign has been successfully generated and is ready for use.",
				fmt.Sprintf("Campaign ID: #%s", shortID(campaignID)),
				"You can now view, edit, and publish your content.",
			},
			CTALabel: "View Campaign",
			CTAURL:   fmt.Sprintf("%s/campaigns/%s", baseURL, campaignID),
		}

	case TypeCampaignFailed:
		cause := "Unknown error"
		if c, ok := notif.Data["error"].(string); ok && c != "" {
			cause = c
		}
		return "❌ Campaign Generation Failed - Solara AI", emailData{
			Heading: "❌ Campaign Failed",
			Lines: []string{
				"We're sorry, but your campaign generation failed to complete successfully.",
				fmt.Sprintf("Error details: %s", cause),
				"You can try creating the campaign again, or contact our support team for assistance.",
			},
			CTALabel: "Try Again",
			CTAURL:   baseURL + "/create",
		}

	case TypeUsageLimitWarning:
		percentage, tier := usagePayload(notif)
		return "⚠️ Approaching Monthly Limit - Solara AI", emailData{
			Heading: "⚠️ Approaching Monthly Limit",
			Lines: []string{
				fmt.Sprintf("You've used %d%% of your monthly campaigns on the %s plan.", percentage, tier),
				"To continue creating campaigns without interruption, consider upgrading to a higher tier.",
			},
			CTALabel: "Upgrade Plan",
			CTAURL:   baseURL + "/settings/billing",
		}

	case TypeUsageLimitReached:
		_, tier := usagePayload(notif)
		return "🚨 Monthly Limit Reached - Solara AI", emailData{
			Heading: "🚨 Monthly Limit Reached",
			Lines: []string{
				fmt.Sprintf("You've used all available campaigns for your %s plan this month.", tier),
				"To continue creating campaigns, please upgrade your plan or wait for your monthly limit to reset.",
			},
			CTALabel: "Upgrade Now",
			CTAURL:   baseURL + "/settings/billing",
		}

	default:
		return notif.Title, emailData{
			Heading: notif.Title,
			Lines:   []string{notif.Message},
		}
	}
}

func usagePayload(notif Notification) (int, string) {
	percentage := 0
	tier := "current"
	if notif.Data != nil {
		switch v := notif.Data["percentage"].(type) {
		case int:
			percentage = v
		case float64:
			percentage = int(v)
		}
		if t, ok := notif.Data["subscription_tier"].(string); ok && t != "" {
			tier = t
		}
	}
	return percentage, tier
}

func shortID(id string) string {
	if id == "" {
		return "N/A"
	}
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
