package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/onu24/learnsphere-v1/internal/app"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

const sessionHeader = "X-Session-ID"

// CheckoutRunner is the minimal interface needed to run a checkout.
type CheckoutRunner interface {
	Checkout(ctx context.Context, in app.CheckoutInput) (domain.Order, error)
}

// HandleCheckout returns an HTTP handler that turns the session cart
// into an order.
func HandleCheckout(svc CheckoutRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, codeSessionRequired, "session id required")
			return
		}

		var req checkoutRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		var userID *string
		if identity, ok := identityFrom(r.Context()); ok {
			id := identity.UserID
			userID = &id
		}

		stages := []string{}
		order, err := svc.Checkout(r.Context(), app.CheckoutInput{
			SessionID:        sessionID,
			UserID:           userID,
			CustomerName:     req.CustomerName,
			PayerEmail:       req.PayerEmail,
			PaymentReference: req.PaymentReference,
			OnStage: func(stage app.Stage) {
				stages = append(stages, string(stage))
			},
		})
		if err != nil {
			switch err {
			case domain.ErrMissingField:
				writeError(w, http.StatusBadRequest, codeMissingField, err.Error())
			case domain.ErrReferenceTooShort:
				writeError(w, http.StatusBadRequest, codeReferenceTooShort, err.Error())
			case domain.ErrEmptyCart:
				writeError(w, http.StatusBadRequest, codeEmptyCart, err.Error())
			case domain.ErrDuplicateReference:
				writeError(w, http.StatusConflict, codeDuplicateReference, err.Error())
			case domain.ErrVerificationFailed:
				writeError(w, http.StatusUnprocessableEntity, codeVerificationFailed, err.Error())
			case domain.ErrNotificationFailed:
				writeError(w, http.StatusBadGateway, codeNotificationFailed, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, checkoutResponse{
			ID:               order.ID,
			CustomerName:     order.CustomerName,
			PayerEmail:       order.PayerEmail,
			PaymentReference: order.PaymentReference,
			Courses:          order.Courses,
			TotalAmount:      order.TotalAmount,
			Status:           string(order.Status),
			CreatedAt:        order.CreatedAt,
			Stages:           stages,
		})
	}
}

type checkoutRequest struct {
	CustomerName     string `json:"customer_name"`
	PayerEmail       string `json:"payer_email"`
	PaymentReference string `json:"payment_reference"`
}

type checkoutResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	PayerEmail       string    `json:"payer_email"`
	PaymentReference string    `json:"payment_reference"`
	Courses          []string  `json:"courses"`
	TotalAmount      float64   `json:"total_amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	Stages           []string  `json:"stages"`
}
