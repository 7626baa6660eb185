package mail

import (
	"context"

	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/models"
	"github.com/gantangan/gantangan-api/internal/mykafka"
)

// Mailer dispatches a verification mail for the given user. Delivery itself
// happens outside this service.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, user *models.User, token string) error
}

// KafkaMailer hands the mail request to the mail worker through Kafka.
type KafkaMailer struct {
	Producer *mykafka.Producer
	Topic    string
}

func (m *KafkaMailer) SendVerificationEmail(ctx context.Context, user *models.User, token string) error {
	event := map[string]any{
		"type":    "verification_email",
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"token":   token,
	}
	return m.Producer.PublishEvent(ctx, m.Topic, user.ID.String(), event)
}

// LogMailer is the fallback when no broker is configured: it writes the
// verification token to the log so local setups stay usable.
type LogMailer struct{}

func (LogMailer) SendVerificationEmail(ctx context.Context, user *models.User, token string) error {
	logging.FromContext(ctx).Info("verification_email",
		"email", user.Email, "token", token)
	return nil
}
