package mailer

import (
	"context"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun sends notifications from a fixed sender address.
type Mailgun struct {
	client *mg.MailgunImpl
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{client: mg.NewMailgun(domain, apiKey), Sender: sender}
}

// Send sends one email. html is optional and added as the HTML part.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	_, _, err := m.client.Send(ctx, msg)
	return err
}

var _ Sender = (*Mailgun)(nil)
