package notify

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

func TestRenderReceipt(t *testing.T) {
	t.Parallel()

	order := domain.Order{
		ID:               "order-1",
		CustomerName:     "Alice",
		PayerEmail:       "a@x.com",
		PaymentReference: "UTR123456",
		Courses:          []string{"Web Development Fundamentals", "Python for Data Science"},
		TotalAmount:      108,
		Status:           domain.OrderStatusConfirmed,
		CreatedAt:        time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	receipt := RenderReceipt(order)

	if receipt.To != "a@x.com" {
		t.Fatalf("expected recipient a@x.com, got %s", receipt.To)
	}
	if receipt.Subject != "Order Confirmation: UTR123456 - LearnSphere" {
		t.Fatalf("unexpected subject: %s", receipt.Subject)
	}
	for _, want := range []string{
		"Dear Alice,",
		"Transaction ID : UTR123456",
		"Total Paid     : 108.00",
		"- Web Development Fundamentals",
		"- Python for Data Science",
	} {
		if !strings.Contains(receipt.Body, want) {
			t.Fatalf("expected body to contain %q, got:\n%s", want, receipt.Body)
		}
	}
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := NewLogSender(log.New(&buf, "", 0))

	err := sender.Send(context.Background(), domain.Order{
		CustomerName:     "Bob",
		PayerEmail:       "b@x.com",
		PaymentReference: "UTR000001",
		Courses:          []string{"Cybersecurity Essentials"},
		TotalAmount:      55,
		CreatedAt:        time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "to=b@x.com") {
		t.Fatalf("expected log to name the recipient, got %q", buf.String())
	}
}
