package notification

import (
	"errors"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailSender is the email leg of the gateway.
type MailSender interface {
	Send(to, subject, plainText, htmlText string) error
}

// SendgridMailer sends through the SendGrid API.
type SendgridMailer struct {
	fromName string
	fromAddr string
	apiKey   string
}

// NewSendgridMailer creates a mailer sending as fromName <fromAddr>.
func NewSendgridMailer(apiKey, fromName, fromAddr string) *SendgridMailer {
	return &SendgridMailer{
		fromName: fromName,
		fromAddr: fromAddr,
		apiKey:   apiKey,
	}
}

// Send implements MailSender.
func (s *SendgridMailer) Send(to, subject, plainText, htmlText string) error {
	from := mail.NewEmail(s.fromName, s.fromAddr)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainText, htmlText)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return errors.New(response.Body)
	}
	return nil
}
