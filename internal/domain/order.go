package domain

import "time"

// OrderStatus tracks whether a payment has been confirmed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
)

// Order is a purchase record tied to a unique payment reference.
// UserID is nil for guest checkouts.
type Order struct {
	ID               string
	UserID           *string
	CustomerName     string
	PayerEmail       string
	PaymentReference string
	Courses          []string
	TotalAmount      float64
	Status           OrderStatus
	CreatedAt        time.Time
}
