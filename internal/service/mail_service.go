package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"
)

// EmailMessage is a transport-ready notification. Constructed fresh per
// request and never stored.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single email. This is the pipeline's authoritative
// sink: a send failure is the overall request failure.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	apiKey string
	client *http.Client
}

// NewResendMailer creates a new Resend mailer
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers the message. A missing API key is an error, not a
// silent skip: the notification is the only proof the business
// received the inquiry.
func (m *ResendMailer) Send(ctx context.Context, msg EmailMessage) error {
	if m.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}

	payload := resendEmail{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	return nil
}

// MailService renders inquiry notifications and hands them to the
// mailer. Recipient and sender come from configuration.
type MailService struct {
	mailer    Mailer
	recipient string
	from      string
}

// NewMailService creates a new mail service
func NewMailService(mailer Mailer, recipient, from string) *MailService {
	return &MailService{
		mailer:    mailer,
		recipient: recipient,
		from:      from,
	}
}

// SendAvailabilityInquiry notifies the studio about an availability check.
func (s *MailService) SendAvailabilityInquiry(ctx context.Context, name, whatsapp, weddingDate, city string) error {
	if s.recipient == "" {
		return fmt.Errorf("MP_INQUIRY_EMAIL is not configured")
	}

	rows := [][2]string{
		{"Name", "<strong>" + html.EscapeString(name) + "</strong>"},
		{"WhatsApp", html.EscapeString(whatsapp)},
		{"Wedding Date", html.EscapeString(weddingDate)},
		{"City", html.EscapeString(city)},
	}

	return s.mailer.Send(ctx, EmailMessage{
		From:    s.from,
		To:      s.recipient,
		Subject: "New Wedding Inquiry for Maa's Production 💍",
		HTML: buildInquiryHTML(
			"Someone just checked availability for their wedding.",
			"A new couple has reached out to explore wedding photography and filmmaking. Here are their details:",
			rows,
			"Reply directly on WhatsApp to create a warm, human-first experience. The studio works with a limited number of weddings per year, so following up soon will help them feel held.",
		),
	})
}

// SendContactMessage notifies the studio about a contact-form message.
func (s *MailService) SendContactMessage(ctx context.Context, firstName, lastName, email, subject, message string) error {
	if s.recipient == "" {
		return fmt.Errorf("MP_INQUIRY_EMAIL is not configured")
	}

	rows := [][2]string{
		{"Name", "<strong>" + html.EscapeString(firstName+" "+lastName) + "</strong>"},
		{"Email", html.EscapeString(email)},
		{"Subject", html.EscapeString(subject)},
		{"Message", html.EscapeString(message)},
	}

	return s.mailer.Send(ctx, EmailMessage{
		From:    s.from,
		To:      s.recipient,
		Subject: "New message from the website · " + subject,
		HTML: buildInquiryHTML(
			"Someone sent a message through the website.",
			"A visitor used the contact form. Here is what they wrote:",
			rows,
			"Reply by email to keep the conversation going.",
		),
	})
}

// buildInquiryHTML renders the studio's inquiry email: a soft card on a
// warm background with a label/value table.
func buildInquiryHTML(headline, intro string, rows [][2]string, footer string) string {
	var detail bytes.Buffer
	for _, row := range rows {
		fmt.Fprintf(&detail, `
                <tr>
                  <td width="140" style="color:#6B6B6B;padding:4px 0;">%s</td>
                  <td style="padding:4px 0;">%s</td>
                </tr>`, row[0], row[1])
	}

	return fmt.Sprintf(`
  <table width="100%%" cellpadding="0" cellspacing="0" style="background:#FFF7F2;padding:32px 0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;color:#2E2E2E;">
    <tr>
      <td align="center">
        <table width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:18px;border:1px solid #E6DDD8;padding:28px 32px;">
          <tr>
            <td style="font-size:11px;letter-spacing:0.18em;text-transform:uppercase;color:#6B6B6B;padding-bottom:12px;">
              New wedding inquiry · Maa's Production
            </td>
          </tr>
          <tr>
            <td style="font-size:22px;line-height:1.3;font-weight:500;padding-bottom:18px;">
              %s
            </td>
          </tr>
          <tr>
            <td style="font-size:14px;line-height:1.7;color:#6B6B6B;padding-bottom:18px;">
              %s
            </td>
          </tr>
          <tr>
            <td>
              <table width="100%%" cellpadding="0" cellspacing="0" style="font-size:14px;line-height:1.6;color:#2E2E2E;">%s
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding-top:22px;font-size:13px;line-height:1.6;color:#6B6B6B;">
              %s
            </td>
          </tr>
        </table>
        <div style="font-size:11px;color:#A0A0A0;padding-top:16px;">
          This email was sent automatically from the Maa's Production website.
        </div>
      </td>
    </tr>
  </table>
  `, headline, intro, detail.String(), footer)
}
