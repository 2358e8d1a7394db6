package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	drivermailer "bizsuite-service/internal/app/drivers/mailer"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type Service struct {
	Channel *amqp091.Channel
	Client  *drivermailer.SMTPClient
	Queue   string
}

func NewMailerService(client *drivermailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (*Service, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Service{
		Channel: channel,
		Client:  client,
		Queue:   queue,
	}, nil
}

func (s *Service) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	return nil
}

// deliver performs the actual SMTP send. Called by the worker, never by
// request handlers.
func (s *Service) deliver(payload *requests.EmailPayload) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailFormat, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, s.Client.Sender, []string{payload.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err)
	}
	return nil
}
