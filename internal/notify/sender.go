package notify

import (
	"context"
	"log"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// Sender delivers an order receipt. Failures must be reported, never
// swallowed: the checkout flow surfaces them to the buyer.
type Sender interface {
	Send(ctx context.Context, order domain.Order) error
}

// LogSender renders the receipt to the process log. Used in development
// when no Kafka brokers are configured.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, order domain.Order) error {
	receipt := RenderReceipt(order)
	s.logger.Printf("receipt sent to=%s subject=%q\n%s", receipt.To, receipt.Subject, receipt.Body)
	return nil
}
