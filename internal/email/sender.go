package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"

	"github.com/steadfast-app/steadfast/internal/models"
)

const charsetUTF8 = "UTF-8"

// Sender delivers transactional email through SES. When no from address is
// configured the sender is disabled and every send is a silent no-op, which
// keeps local development free of AWS credentials.
type Sender struct {
	client  *ses.SES
	from    string
	enabled bool
}

func NewSender(from string) *Sender {
	sender := &Sender{from: from, enabled: from != ""}
	if sender.enabled {
		sender.client = ses.New(session.Must(session.NewSession()))
	}
	return sender
}

func (sender *Sender) SendCheckInReminder(ctx context.Context, client models.User, coach models.User, periodLabel string, stage string) error {
	if !sender.enabled {
		return nil
	}
	if client.Email == "" {
		return nil
	}

	subject, htmlBody, textBody := checkInReminderContent(client, coach, periodLabel, stage)
	return sender.send(ctx, client.Email, subject, htmlBody, textBody)
}

func (sender *Sender) send(ctx context.Context, to string, subject string, htmlBody string, textBody string) error {
	_, err := sender.client.SendEmailWithContext(ctx, &ses.SendEmailInput{
		Source: aws.String(sender.from),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Charset: aws.String(charsetUTF8),
				Data:    aws.String(subject),
			},
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String(charsetUTF8),
					Data:    aws.String(htmlBody),
				},
				Text: &ses.Content{
					Charset: aws.String(charsetUTF8),
					Data:    aws.String(textBody),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	return nil
}
