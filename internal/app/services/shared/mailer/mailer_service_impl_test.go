package mailer

import (
	"context"
	"errors"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	queue     string
	published []amqp091.Publishing
	err       error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	f.queue = key
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func TestMailerService_SendEmail(t *testing.T) {
	payload := &requests.EmailPayload{
		To:           "adrian@jsmastery.pro",
		Subject:      constvars.MailerSubjectPatientRegistered,
		TemplateName: constvars.MailerTemplatePatientRegistered,
		TemplateData: map[string]string{"name": "Adrian Hajdin"},
	}

	t.Run("Publishes Persistent JSON Message", func(t *testing.T) {
		channel := &fakePublisher{}
		service := newMailerService(channel, "mailer")

		err := service.SendEmail(context.Background(), payload)

		require.NoError(t, err)
		require.Len(t, channel.published, 1)
		assert.Equal(t, "mailer", channel.queue)
		msg := channel.published[0]
		assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)

		var decoded requests.EmailPayload
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, *payload, decoded)
	})

	t.Run("Publish Failure Is Wrapped", func(t *testing.T) {
		channel := &fakePublisher{err: errors.New("channel closed")}
		service := newMailerService(channel, "mailer")

		err := service.SendEmail(context.Background(), payload)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mailer")
	})
}
