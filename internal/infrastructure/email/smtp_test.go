package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, m...)
	return nil
}

func newTestService(t *testing.T, d Dialer) *SMTPEmailService {
	t.Helper()
	svc, err := NewSMTPEmailServiceWithDialer(SMTPConfig{
		FromAddress:  "noreply@estately.test",
		FromName:     "Estately",
		FrontendURL:  "https://app.estately.test/",
		AdminAddress: "sales@estately.test",
	}, d)
	require.NoError(t, err)
	return svc
}

// render returns the quoted-printable wire form, so "=" appears as "=3D".
func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendVerificationEmail_LinksToFrontend(t *testing.T) {
	d := &recordingDialer{}
	svc := newTestService(t, d)

	require.NoError(t, svc.SendVerificationEmail("jane@example.com", "tok123"))
	require.Len(t, d.messages, 1)

	assert.Equal(t, []string{"jane@example.com"}, d.messages[0].GetHeader("To"))
	assert.Contains(t, render(t, d.messages[0]), "https://app.estately.test/verify-email?token=3Dtok123")
}

func TestSendPasswordResetEmail(t *testing.T) {
	d := &recordingDialer{}
	svc := newTestService(t, d)

	require.NoError(t, svc.SendPasswordResetEmail("jane@example.com", "abc"))
	assert.Contains(t, render(t, d.messages[0]), "/reset-password?token=3Dabc")
}

func TestSendContactNotification_EscapesHTML(t *testing.T) {
	d := &recordingDialer{}
	svc := newTestService(t, d)

	err := svc.SendContactNotification("owner@example.com", ContactNotification{
		StoreName: "Sunny Homes",
		Name:      "Bob",
		Email:     "bob@example.com",
		Message:   "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bob@example.com"}, d.messages[0].GetHeader("Reply-To"))
	body := render(t, d.messages[0])
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>alert(1)</script></p>")
}

func TestSendAdminContactNotification(t *testing.T) {
	d := &recordingDialer{}
	svc := newTestService(t, d)

	require.NoError(t, svc.SendAdminContactNotification(AdminContactNotification{
		Name: "Ann", Email: "ann@example.com", Company: "Acme", Message: "hi",
	}))
	assert.Equal(t, []string{"sales@estately.test"}, d.messages[0].GetHeader("To"))
}

func TestSend_DialerFailure(t *testing.T) {
	svc := newTestService(t, &recordingDialer{err: errors.New("connection refused")})

	err := svc.SendPasswordChangedEmail("jane@example.com")
	assert.ErrorContains(t, err, "connection refused")
}
