package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingMailer struct {
	sendErr error
	calls   int
	lastMsg EmailMessage
}

func (m *capturingMailer) Send(ctx context.Context, msg EmailMessage) error {
	m.calls++
	m.lastMsg = msg
	return m.sendErr
}

func TestSendAvailabilityInquiry(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewMailService(mailer, "studio@example.com", "Website <no-reply@example.com>")

	err := svc.SendAvailabilityInquiry(context.Background(), "Asha & Rohan", "+91 98765 43210", "2026-12-12", "Udaipur")

	require.NoError(t, err)
	require.Equal(t, 1, mailer.calls)
	assert.Equal(t, "studio@example.com", mailer.lastMsg.To)
	assert.Equal(t, "Website <no-reply@example.com>", mailer.lastMsg.From)
	assert.Equal(t, "New Wedding Inquiry for Maa's Production 💍", mailer.lastMsg.Subject)
	assert.Contains(t, mailer.lastMsg.HTML, "Asha &amp; Rohan", "values must be HTML-escaped")
	assert.Contains(t, mailer.lastMsg.HTML, "Udaipur")
}

func TestSendContactMessage(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewMailService(mailer, "studio@example.com", "Website <no-reply@example.com>")

	err := svc.SendContactMessage(context.Background(), "Meera", "Iyer", "meera@example.com", "Wedding in Goa", "We are planning a two-day celebration.")

	require.NoError(t, err)
	assert.Equal(t, "New message from the website · Wedding in Goa", mailer.lastMsg.Subject)
	assert.Contains(t, mailer.lastMsg.HTML, "Meera Iyer")
	assert.Contains(t, mailer.lastMsg.HTML, "meera@example.com")
}

func TestMailService_RequiresRecipient(t *testing.T) {
	mailer := &capturingMailer{}
	svc := NewMailService(mailer, "", "Website <no-reply@example.com>")

	err := svc.SendAvailabilityInquiry(context.Background(), "n", "w", "d", "c")
	require.Error(t, err)
	assert.Zero(t, mailer.calls)

	err = svc.SendContactMessage(context.Background(), "f", "l", "e", "s", "m")
	require.Error(t, err)
	assert.Zero(t, mailer.calls)
}

func TestMailService_PropagatesSendFailure(t *testing.T) {
	mailer := &capturingMailer{sendErr: fmt.Errorf("rate limited")}
	svc := NewMailService(mailer, "studio@example.com", "Website <no-reply@example.com>")

	err := svc.SendAvailabilityInquiry(context.Background(), "n", "+91 98765 43210", "2026-12-12", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestResendMailer_RequiresAPIKey(t *testing.T) {
	mailer := NewResendMailer("")

	err := mailer.Send(context.Background(), EmailMessage{To: "studio@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
}
