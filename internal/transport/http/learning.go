package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// LearningService is the minimal interface needed for the my-courses
// endpoints.
type LearningService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateProgress(ctx context.Context, userID, courseName string, progress int) error
}

// HandleMyCourses returns an HTTP handler for the caller's enrolled
// courses.
func HandleMyCourses(svc LearningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		identity, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}

		enrollments, err := svc.ListForUser(r.Context(), identity.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		resp := make([]enrollmentResponse, 0, len(enrollments))
		for _, e := range enrollments {
			resp = append(resp, enrollmentResponse{
				CourseName:   e.CourseName,
				EnrolledAt:   e.EnrolledAt,
				Progress:     e.Progress,
				LastAccessed: e.LastAccessed,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleProgress returns an HTTP handler for recording course
// completion progress.
func HandleProgress(svc LearningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		identity, ok := identityFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			return
		}

		var req progressRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if err := svc.UpdateProgress(r.Context(), identity.UserID, req.CourseName, req.Progress); err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case domain.ErrInvalidProgress:
				writeError(w, http.StatusBadRequest, codeInvalidProgress, err.Error())
			case domain.ErrNotEnrolled:
				writeError(w, http.StatusNotFound, codeNotEnrolled, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type enrollmentResponse struct {
	CourseName   string     `json:"course_name"`
	EnrolledAt   time.Time  `json:"enrolled_at"`
	Progress     int        `json:"progress"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

type progressRequest struct {
	CourseName string `json:"course_name"`
	Progress   int    `json:"progress"`
}
