package mail

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gomail/gomail"

	"github.com/careslot/appointment-api/internal/config"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
}

func New(cfg *config.Config) *Mailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &Mailer{
		host: cfg.SMTPHost,
		port: port,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
	}
}

// SendReceipt mails the payment receipt with the PDF attached. Callers treat
// failures as non-fatal: a paid appointment stays paid even if the mail
// never leaves.
func (m *Mailer) SendReceipt(to string, reference string, pdf []byte) error {
	if m.user == "" {
		return fmt.Errorf("mailer not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payment confirmation for your appointment")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your payment for appointment %s was received. The receipt is attached.", reference,
	))

	msg.Attach("receipt.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending receipt: %v", err)
	}

	return nil
}
