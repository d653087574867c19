package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/onu24/learnsphere-v1/internal/app"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// OrderAdminService is the minimal interface needed for the back-office
// order endpoints.
type OrderAdminService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ConfirmOrder(ctx context.Context, id string) (domain.Order, error)
	Stats(ctx context.Context) (app.Stats, error)
}

// HandleAdminOrders returns an HTTP handler for listing the ledger.
func HandleAdminOrders(svc OrderAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		resp := make([]orderResponse, 0, len(orders))
		for _, order := range orders {
			resp = append(resp, toOrderResponse(order))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleConfirmOrder returns an HTTP handler for marking a pending
// order confirmed.
func HandleConfirmOrder(svc OrderAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseConfirmOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		order, err := svc.ConfirmOrder(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrOrderNotFound:
				writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toOrderResponse(order))
	}
}

// HandleAdminStats returns an HTTP handler for the dashboard summary.
func HandleAdminStats(svc OrderAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			TotalRevenue:    stats.TotalRevenue,
			TotalOrders:     stats.TotalOrders,
			PendingOrders:   stats.PendingOrders,
			ConfirmedOrders: stats.ConfirmedOrders,
			TotalUsers:      stats.TotalUsers,
			TotalCourses:    stats.TotalCourses,
		})
	}
}

func parseConfirmOrderPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "orders" || parts[3] != "confirm" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type orderResponse struct {
	ID               string    `json:"id"`
	UserID           *string   `json:"user_id,omitempty"`
	CustomerName     string    `json:"customer_name"`
	PayerEmail       string    `json:"payer_email"`
	PaymentReference string    `json:"payment_reference"`
	Courses          []string  `json:"courses"`
	TotalAmount      float64   `json:"total_amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:               order.ID,
		UserID:           order.UserID,
		CustomerName:     order.CustomerName,
		PayerEmail:       order.PayerEmail,
		PaymentReference: order.PaymentReference,
		Courses:          order.Courses,
		TotalAmount:      order.TotalAmount,
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
	}
}

type statsResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	ConfirmedOrders int     `json:"confirmed_orders"`
	TotalUsers      int     `json:"total_users"`
	TotalCourses    int     `json:"total_courses"`
}
