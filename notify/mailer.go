// Package notify sends operator and customer emails over an SSL SMTP
// submission session. Delivery is best-effort: no retries, no queue.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Mailer sends mail through the configured SMTP endpoint.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

// NewMailer creates a Mailer. An empty password leaves the mailer in
// disabled mode: Send becomes a silent no-op so environments without mail
// credentials degrade gracefully.
func NewMailer(host string, port int, from, password string) *Mailer {
	return &Mailer{host: host, port: port, from: from, password: password}
}

// Enabled reports whether the mailer has credentials to send with.
func (m *Mailer) Enabled() bool {
	return m.password != ""
}

// Send composes a single-part HTML message and delivers it in one SMTP
// session. When the mailer is disabled it returns nil without connecting.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	d.SSL = true

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", to, err)
	}
	return nil
}
