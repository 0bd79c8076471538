package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers lead notifications to the platform inbox
// through the Resend API.
type ResendEmailSender struct {
	client *resend.Client
	from   string
	inbox  string
}

func NewResendEmailSender(apiKey, from, inbox string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" || strings.TrimSpace(inbox) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
		inbox:  inbox,
	}
}

func (s *ResendEmailSender) SendLeadNotification(ctx context.Context, n LeadNotification) error {
	if s.client == nil {
		return errors.New("email sender not configured")
	}

	subject := fmt.Sprintf("Novo lead (%s): %s", n.Kind, n.Name)
	listing := "(sem anúncio)"
	if n.ListingID != nil {
		listing = n.ListingID.String()
	}
	html := fmt.Sprintf(
		"<p><strong>%s</strong> &lt;%s&gt;</p><p>Anúncio: %s</p><p>%s</p>",
		n.Name, n.Email, listing, n.Message,
	)
	text := fmt.Sprintf("%s <%s>\nAnuncio: %s\n\n%s", n.Name, n.Email, listing, n.Message)

	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.inbox},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	return err
}
