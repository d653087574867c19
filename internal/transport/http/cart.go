package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/onu24/learnsphere-v1/internal/cart"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// CourseGetter looks up catalog entries when staging them in a cart.
type CourseGetter interface {
	GetCourse(ctx context.Context, id string) (domain.Course, error)
}

// HandleCart returns an HTTP handler for listing, filling and clearing
// the session cart.
func HandleCart(store cart.Store, catalog CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, codeSessionRequired, "session id required")
			return
		}

		switch r.Method {
		case http.MethodGet:
			items, err := store.Items(r.Context(), sessionID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			if items == nil {
				items = []domain.CartItem{}
			}
			writeJSON(w, http.StatusOK, items)
			return
		case http.MethodPost:
			var req addCartItemRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if req.CourseID == "" {
				writeError(w, http.StatusBadRequest, codeInvalidID, domain.ErrInvalidID.Error())
				return
			}

			course, err := catalog.GetCourse(r.Context(), req.CourseID)
			if err != nil {
				switch err {
				case domain.ErrCourseNotFound, domain.ErrInvalidID:
					writeError(w, http.StatusNotFound, codeCourseNotFound, domain.ErrCourseNotFound.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			item := domain.CartItem{
				CourseID: course.ID,
				Name:     course.Name,
				Price:    course.Price,
			}
			if err := store.Add(r.Context(), sessionID, item); err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			writeJSON(w, http.StatusCreated, item)
			return
		case http.MethodDelete:
			if err := store.Clear(r.Context(), sessionID); err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleCartItem returns an HTTP handler for removing a single course
// from the session cart.
func HandleCartItem(store cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, codeSessionRequired, "session id required")
			return
		}

		courseID, ok := parseCartItemPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if err := store.Remove(r.Context(), sessionID, courseID); err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseCartItemPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "cart" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type addCartItemRequest struct {
	CourseID string `json:"course_id"`
}
