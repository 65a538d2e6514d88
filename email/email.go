package email

import (
	"fmt"
	"net/smtp"
	"os"
)

type ContactService struct {
	host     string
	port     string
	user     string
	password string
	from     string
	to       string
}

func NewContactService() *ContactService {
	return &ContactService{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		to:       os.Getenv("CONTACT_EMAIL"),
	}
}

// Enabled reports whether SMTP delivery is configured. The contact form is
// hidden behind a mailto link when it is not.
func (e *ContactService) Enabled() bool {
	return e.host != "" && e.to != ""
}

// SendContactMessage forwards a contact-form submission to the campaign
// mailbox, with the visitor's address as Reply-To.
func (e *ContactService) SendContactMessage(name, replyTo, message string) error {
	subject := fmt.Sprintf("Skilaboð frá %s", name)
	body := fmt.Sprintf(`Ný skilaboð af vefnum.

Nafn: %s
Netfang: %s

%s
`, name, replyTo, message)

	msg := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Reply-To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", e.from, e.to, replyTo, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{e.to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}
