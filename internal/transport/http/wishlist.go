package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// WishlistService is the minimal interface needed for the wishlist
// endpoints.
type WishlistService interface {
	List(ctx context.Context, userID string) ([]domain.Course, error)
	Add(ctx context.Context, userID, courseID string) error
	Remove(ctx context.Context, userID, courseID string) error
}

// HandleWishlist returns an HTTP handler for listing and growing the
// caller's wishlist. Callers must be authenticated.
func HandleWishlist(svc WishlistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}

		switch r.Method {
		case http.MethodGet:
			courses, err := svc.List(r.Context(), identity.UserID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]courseResponse, 0, len(courses))
			for _, course := range courses {
				resp = append(resp, toCourseResponse(course))
			}
			writeJSON(w, http.StatusOK, resp)
			return
		case http.MethodPost:
			var req wishlistRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			if err := svc.Add(r.Context(), identity.UserID, req.CourseID); err != nil {
				switch err {
				case domain.ErrInvalidID:
					writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
				case domain.ErrCourseNotFound:
					writeError(w, http.StatusNotFound, codeCourseNotFound, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
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

// HandleWishlistItem returns an HTTP handler for removing a single
// course from the caller's wishlist.
func HandleWishlistItem(svc WishlistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		identity, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}

		courseID, ok := parseWishlistItemPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if err := svc.Remove(r.Context(), identity.UserID, courseID); err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseWishlistItemPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "wishlist" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type wishlistRequest struct {
	CourseID string `json:"course_id"`
}
