package contracts

import (
	"context"

	"bizsuite-service/internal/pkg/dto/requests"
)

// MailerService enqueues email payloads onto the mailer queue. Actual SMTP
// delivery happens in the background worker consuming that queue.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
