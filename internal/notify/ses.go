package notify

import (
	"context"
	"fmt"

	"clinic-cms/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog"
)

// sesAPI is the subset of the SES client used to send mail.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// sesNotifier sends plain-text notifications through AWS SES.
type sesNotifier struct {
	client sesAPI
	from   string
	to     string
	logger zerolog.Logger
}

// NewSESNotifier creates a Notifier backed by AWS SES in the given region.
func NewSESNotifier(ctx context.Context, region, from, to string, logger zerolog.Logger) (Notifier, error) {
	logger = logger.With().Str("component", "ses-notifier").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("region", region).
		Str("to", to).
		Msg("SES notifier initialised")

	return newSESNotifier(ses.NewFromConfig(cfg), from, to, logger), nil
}

func newSESNotifier(client sesAPI, from, to string, logger zerolog.Logger) *sesNotifier {
	return &sesNotifier{
		client: client,
		from:   from,
		to:     to,
		logger: logger,
	}
}

// AppointmentBooked e-mails the details of a new appointment.
func (n *sesNotifier) AppointmentBooked(ctx context.Context, appt *model.Appointment) error {
	return n.send(ctx, appointmentMessage(appt))
}

// ContactReceived e-mails a new contact form submission.
func (n *sesNotifier) ContactReceived(ctx context.Context, msg *model.ContactSubmission) error {
	return n.send(ctx, contactMessage(msg))
}

func (n *sesNotifier) send(ctx context.Context, m message) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(m.subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(m.body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
		Source: aws.String(n.from),
	}

	out, err := n.client.SendEmail(ctx, input)
	if err != nil {
		n.logger.Error().Err(err).Str("subject", m.subject).Msg("failed to send notification")
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.logger.Debug().
		Str("message_id", aws.ToString(out.MessageId)).
		Str("subject", m.subject).
		Msg("notification sent")

	return nil
}
