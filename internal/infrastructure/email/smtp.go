package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// FrontendURL is the base for links in verification and reset emails.
	FrontendURL  string
	ServiceName  string
	AdminAddress string
}

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// ContactNotification is sent to a store owner when a visitor submits a
// contact request.
type ContactNotification struct {
	StoreName string
	ItemTitle string
	Name      string
	Email     string
	Phone     string
	Message   string
}

type AdminContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer Dialer
	html   *htmltemplate.Template
	text   *texttemplate.Template
}

func NewSMTPEmailService(config SMTPConfig) (*SMTPEmailService, error) {
	return NewSMTPEmailServiceWithDialer(config,
		gomail.NewDialer(config.Host, config.Port, config.Username, config.Password))
}

func NewSMTPEmailServiceWithDialer(config SMTPConfig, dialer Dialer) (*SMTPEmailService, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	if config.ServiceName == "" {
		config.ServiceName = "Estately"
	}
	config.FrontendURL = strings.TrimRight(config.FrontendURL, "/")

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
		html:   html,
		text:   text,
	}, nil
}

func (s *SMTPEmailService) link(path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", s.config.FrontendURL, path, url.QueryEscape(token))
}

func (s *SMTPEmailService) SendVerificationEmail(to, token string) error {
	data := map[string]string{
		"ServiceName": s.config.ServiceName,
		"URL":         s.link("/verify-email", token),
	}
	return s.send(to, "", "Verify Your Email Address", "verification", data)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	data := map[string]string{
		"ServiceName": s.config.ServiceName,
		"URL":         s.link("/reset-password", token),
	}
	return s.send(to, "", "Reset Your Password", "reset", data)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	data := map[string]string{"ServiceName": s.config.ServiceName}
	return s.send(to, "", "Your Password Was Changed", "password_changed", data)
}

func (s *SMTPEmailService) SendContactNotification(to string, n ContactNotification) error {
	subject := fmt.Sprintf("New contact request from %s", n.Name)
	return s.send(to, n.Email, subject, "contact", n)
}

// SendAdminContactNotification delivers to the configured admin address.
func (s *SMTPEmailService) SendAdminContactNotification(n AdminContactNotification) error {
	if s.config.AdminAddress == "" {
		return fmt.Errorf("admin address: %w", ErrEmailServiceNotConfigured)
	}
	data := struct {
		AdminContactNotification
		ServiceName string
	}{n, s.config.ServiceName}
	subject := fmt.Sprintf("New inquiry from %s", n.Name)
	return s.send(s.config.AdminAddress, n.Email, subject, "admin_contact", data)
}

func (s *SMTPEmailService) send(to, replyTo, subject, name string, data any) error {
	var htmlBody, plainBody bytes.Buffer
	if err := s.html.ExecuteTemplate(&htmlBody, name+".html", data); err != nil {
		return fmt.Errorf("failed to render %s email: %w", name, err)
	}
	if err := s.text.ExecuteTemplate(&plainBody, name+".txt", data); err != nil {
		return fmt.Errorf("failed to render %s email: %w", name, err)
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody.String())
	m.AddAlternative("text/html", htmlBody.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
