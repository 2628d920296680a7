package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends password-reset mail when SMTP credentials are configured
// and logs the reset link otherwise, so the flow works in demo setups.
type Mailer struct {
	User string
	Pass string
	Addr string
}

func NewMailer(user, pass, addr string) *Mailer {
	return &Mailer{User: user, Pass: pass, Addr: addr}
}

func (m *Mailer) configured() bool {
	return m != nil && m.User != "" && m.Pass != ""
}

// SendResetLink delivers the reset URL to the given address. It reports
// whether a real mail went out; the request succeeds either way.
func (m *Mailer) SendResetLink(to, resetURL string) bool {
	if !m.configured() {
		log.Println("Email credentials not found. Mock email sent:")
		log.Printf("Reset Link: %s", resetURL)
		return false
	}

	host := m.Addr
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password Reset Request\r\nContent-Type: text/html\r\n\r\n"+
		"<p>You requested a password reset.</p><p>Click this link to reset your password:</p><a href=%q>%s</a>\r\n",
		m.User, to, resetURL, resetURL)

	auth := smtp.PlainAuth("", m.User, m.Pass, host)
	if err := smtp.SendMail(m.Addr, auth, m.User, []string{to}, []byte(body)); err != nil {
		log.Printf("Email sending failed: %v", err)
		log.Printf("Mock Reset Link (Fallback): %s", resetURL)
		return false
	}
	return true
}
