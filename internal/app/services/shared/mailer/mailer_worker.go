package mailer

import (
	"sync"

	"bizsuite-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StartWorker consumes the mailer queue and delivers each payload over
// SMTP. Returns a stop function that cancels the consumer and waits for
// the in-flight delivery to finish.
func (s *Service) StartWorker(log *zap.Logger) (func(), error) {
	deliveries, err := s.Channel.Consume(s.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				var payload requests.EmailPayload
				if err := json.Unmarshal(delivery.Body, &payload); err != nil {
					log.Error("mailerWorker failed to decode payload", zap.Error(err))
					delivery.Nack(false, false)
					continue
				}
				if err := s.deliver(&payload); err != nil {
					log.Error("mailerWorker failed to send email",
						zap.String("to", payload.To),
						zap.Error(err),
					)
					delivery.Nack(false, false)
					continue
				}
				delivery.Ack(false)
			}
		}
	}()

	stop := func() {
		close(done)
		wg.Wait()
	}
	return stop, nil
}
