package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

const DefaultReceiptTopic = "learnsphere.receipts"

// KafkaSender publishes rendered receipts for the mail worker to deliver.
// Messages are keyed by payment reference so retries for the same order
// land on the same partition.
type KafkaSender struct {
	writer *kafka.Writer
}

func NewKafkaSender(brokers []string, topic string) *KafkaSender {
	if topic == "" {
		topic = DefaultReceiptTopic
	}
	return &KafkaSender{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type receiptEvent struct {
	OrderID          string    `json:"order_id"`
	PaymentReference string    `json:"payment_reference"`
	To               string    `json:"to"`
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	CreatedAt        time.Time `json:"created_at"`
}

func (s *KafkaSender) Send(ctx context.Context, order domain.Order) error {
	receipt := RenderReceipt(order)
	payload, err := json.Marshal(receiptEvent{
		OrderID:          order.ID,
		PaymentReference: order.PaymentReference,
		To:               receipt.To,
		Subject:          receipt.Subject,
		Body:             receipt.Body,
		CreatedAt:        order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.PaymentReference),
		Value: payload,
		Time:  order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("publish receipt: %w", err)
	}
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}
