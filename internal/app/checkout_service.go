package app

import (
	"context"
	"log"
	"time"

	"github.com/onu24/learnsphere-v1/internal/cart"
	"github.com/onu24/learnsphere-v1/internal/clock"
	"github.com/onu24/learnsphere-v1/internal/domain"
	"github.com/onu24/learnsphere-v1/internal/metrics"
	"github.com/onu24/learnsphere-v1/internal/notify"
	"github.com/onu24/learnsphere-v1/internal/verify"
)

// Stage is a client-visible step of the checkout flow.
type Stage string

const (
	StageVerifyingPayment Stage = "verifying_payment"
	StageSendingReceipt   Stage = "sending_email"
	StageSucceeded        Stage = "success"
)

const minReferenceLength = 6

// CheckoutLedger is the slice of the order store the checkout flow needs.
type CheckoutLedger interface {
	FindOrderByPaymentReference(ctx context.Context, ref string) (*domain.Order, error)
	CreateOrder(ctx context.Context, order domain.Order) error
}

// CourseEnroller grants course access after a confirmed purchase.
type CourseEnroller interface {
	EnrollInCourses(ctx context.Context, userID string, courseNames []string, at time.Time) error
}

// CheckoutService runs the purchase flow: validate input, verify the
// payment reference, persist the order, send the receipt, clear the cart.
// Each run creates at most one order and makes at most one send attempt.
type CheckoutService struct {
	ledger   CheckoutLedger
	verifier verify.Verifier
	sender   notify.Sender
	carts    cart.Store
	enroller CourseEnroller
	clock    clock.Clock
	logger   *log.Logger
	metrics  *metrics.Checkout
}

type CheckoutServiceOption func(*CheckoutService)

// WithCheckoutLogger overrides the default process logger.
func WithCheckoutLogger(logger *log.Logger) CheckoutServiceOption {
	return func(s *CheckoutService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCheckoutMetrics records attempt outcomes on the given counters.
func WithCheckoutMetrics(m *metrics.Checkout) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.metrics = m
	}
}

func NewCheckoutService(
	ledger CheckoutLedger,
	verifier verify.Verifier,
	sender notify.Sender,
	carts cart.Store,
	enroller CourseEnroller,
	clk clock.Clock,
	opts ...CheckoutServiceOption,
) *CheckoutService {
	svc := &CheckoutService{
		ledger:   ledger,
		verifier: verifier,
		sender:   sender,
		carts:    carts,
		enroller: enroller,
		clock:    clk,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CheckoutInput struct {
	SessionID        string
	UserID           *string
	CustomerName     string
	PayerEmail       string
	PaymentReference string

	// OnStage, when set, is called once per stage transition in order.
	OnStage func(Stage)
}

func (in CheckoutInput) validate() error {
	if in.CustomerName == "" || in.PayerEmail == "" || in.PaymentReference == "" {
		return domain.ErrMissingField
	}
	if len(in.PaymentReference) < minReferenceLength {
		return domain.ErrReferenceTooShort
	}
	return nil
}

// Checkout drives the full flow for one purchase attempt. On any failure
// before success the session cart is left untouched; a receipt-send
// failure is surfaced even though the order is already persisted.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (domain.Order, error) {
	if err := in.validate(); err != nil {
		s.metrics.Record(metrics.OutcomeInvalidInput)
		return domain.Order{}, err
	}

	items, err := s.carts.Items(ctx, in.SessionID)
	if err != nil {
		s.metrics.Record(metrics.OutcomeError)
		return domain.Order{}, err
	}
	if len(items) == 0 {
		s.metrics.Record(metrics.OutcomeInvalidInput)
		return domain.Order{}, domain.ErrEmptyCart
	}

	in.stage(StageVerifyingPayment)

	existing, err := s.ledger.FindOrderByPaymentReference(ctx, in.PaymentReference)
	if err != nil {
		s.metrics.Record(metrics.OutcomeError)
		return domain.Order{}, err
	}
	if existing != nil {
		s.metrics.Record(metrics.OutcomeDuplicate)
		return domain.Order{}, domain.ErrDuplicateReference
	}

	if err := s.verifier.Verify(ctx, in.PaymentReference); err != nil {
		s.logger.Printf("checkout verification failed ref=%s: %v", in.PaymentReference, err)
		s.metrics.Record(metrics.OutcomeVerificationFailed)
		return domain.Order{}, domain.ErrVerificationFailed
	}

	courseNames := make([]string, 0, len(items))
	var total float64
	for _, item := range items {
		courseNames = append(courseNames, item.Name)
		total += item.Price
	}

	// Verification success is treated as immediate confirmation; the
	// Pending status only appears through manual back-office review.
	order := domain.Order{
		ID:               newID(),
		UserID:           in.UserID,
		CustomerName:     in.CustomerName,
		PayerEmail:       in.PayerEmail,
		PaymentReference: in.PaymentReference,
		Courses:          courseNames,
		TotalAmount:      total,
		Status:           domain.OrderStatusConfirmed,
		CreatedAt:        s.clock.Now(),
	}

	if err := s.ledger.CreateOrder(ctx, order); err != nil {
		// The unique index closes the race between the lookup above and
		// this insert for concurrent checkouts with the same reference.
		if err == domain.ErrDuplicateReference {
			s.metrics.Record(metrics.OutcomeDuplicate)
			return domain.Order{}, err
		}
		s.metrics.Record(metrics.OutcomeError)
		return domain.Order{}, err
	}

	if in.UserID != nil {
		if err := s.enroller.EnrollInCourses(ctx, *in.UserID, courseNames, order.CreatedAt); err != nil {
			// Access can be granted later from the persisted order; the
			// buyer still gets their receipt.
			s.logger.Printf("checkout enrollment failed order=%s user=%s: %v", order.ID, *in.UserID, err)
		}
	}

	in.stage(StageSendingReceipt)

	if err := s.sender.Send(ctx, order); err != nil {
		s.logger.Printf("checkout receipt send failed order=%s: %v", order.ID, err)
		s.metrics.Record(metrics.OutcomeNotificationFailed)
		return domain.Order{}, domain.ErrNotificationFailed
	}

	in.stage(StageSucceeded)

	if err := s.carts.Clear(ctx, in.SessionID); err != nil {
		s.logger.Printf("checkout cart clear failed session=%s: %v", in.SessionID, err)
	}

	s.metrics.Record(metrics.OutcomeSuccess)
	return order, nil
}

func (in CheckoutInput) stage(stage Stage) {
	if in.OnStage != nil {
		in.OnStage(stage)
	}
}
