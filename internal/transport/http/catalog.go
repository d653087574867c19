package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/onu24/learnsphere-v1/internal/app"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// CatalogService is the minimal interface needed for the storefront
// catalog endpoints.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (domain.Course, error)
}

// AdminCatalogService is the minimal interface needed for the admin
// catalog endpoints.
type AdminCatalogService interface {
	AddCourse(ctx context.Context, in app.AddCourseInput) (domain.Course, error)
	BulkAddCourses(ctx context.Context, rows []app.AddCourseInput) ([]domain.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	UpdateCoursePrice(ctx context.Context, id string, price float64) error
}

// HandleCourses returns an HTTP handler for the public catalog listing.
func HandleCourses(svc CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		courses, err := svc.ListCourses(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		resp := make([]courseResponse, 0, len(courses))
		for _, course := range courses {
			resp = append(resp, toCourseResponse(course))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleCourse returns an HTTP handler for a single catalog entry.
func HandleCourse(svc CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseCoursePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		course, err := svc.GetCourse(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrCourseNotFound, domain.ErrInvalidID:
				writeError(w, http.StatusNotFound, codeCourseNotFound, domain.ErrCourseNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toCourseResponse(course))
	}
}

// HandleAdminCourses returns an HTTP handler for adding catalog
// entries, one at a time or as a whole batch.
func HandleAdminCourses(svc AdminCatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		body, err := decodeCourseBody(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if body.single != nil {
			course, err := svc.AddCourse(r.Context(), body.single.toInput())
			if err != nil {
				writeCatalogError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toCourseResponse(course))
			return
		}

		rows := make([]app.AddCourseInput, 0, len(body.batch))
		for _, req := range body.batch {
			rows = append(rows, req.toInput())
		}
		courses, err := svc.BulkAddCourses(r.Context(), rows)
		if err != nil {
			writeCatalogError(w, err)
			return
		}
		resp := make([]courseResponse, 0, len(courses))
		for _, course := range courses {
			resp = append(resp, toCourseResponse(course))
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleAdminCourse returns an HTTP handler for deleting a course or
// changing its price.
func HandleAdminCourse(svc AdminCatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, price, ok := parseAdminCoursePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case price && r.Method == http.MethodPut:
			var req updatePriceRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := svc.UpdateCoursePrice(r.Context(), id, req.Price); err != nil {
				writeCatalogError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		case !price && r.Method == http.MethodDelete:
			if err := svc.DeleteCourse(r.Context(), id); err != nil {
				writeCatalogError(w, err)
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

func writeCatalogError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrCourseNameRequired:
		writeError(w, http.StatusBadRequest, codeCourseNameRequired, err.Error())
	case domain.ErrInvalidPrice:
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	case domain.ErrCourseNotFound, domain.ErrInvalidID:
		writeError(w, http.StatusNotFound, codeCourseNotFound, domain.ErrCourseNotFound.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func parseCoursePath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 {
		return "", false
	}
	if parts[0] != "courses" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// parseAdminCoursePath matches /admin/courses/{id} and
// /admin/courses/{id}/price.
func parseAdminCoursePath(path string) (id string, price bool, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 && len(parts) != 4 {
		return "", false, false
	}
	if parts[0] != "admin" || parts[1] != "courses" || parts[2] == "" {
		return "", false, false
	}
	if len(parts) == 4 {
		if parts[3] != "price" {
			return "", false, false
		}
		return parts[2], true, true
	}
	return parts[2], false, true
}

type courseBody struct {
	single *addCourseRequest
	batch  []addCourseRequest
}

// decodeCourseBody accepts either a single course object or an array
// of them.
func decodeCourseBody(r *http.Request) (courseBody, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&raw); err != nil {
		return courseBody{}, err
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var batch []addCourseRequest
		if err := json.Unmarshal(raw, &batch); err != nil {
			return courseBody{}, err
		}
		return courseBody{batch: batch}, nil
	}

	var single addCourseRequest
	if err := json.Unmarshal(raw, &single); err != nil {
		return courseBody{}, err
	}
	return courseBody{single: &single}, nil
}

type addCourseRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	TrailerURL  string  `json:"trailer_url,omitempty"`
}

func (r addCourseRequest) toInput() app.AddCourseInput {
	return app.AddCourseInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		TrailerURL:  r.TrailerURL,
	}
}

type updatePriceRequest struct {
	Price float64 `json:"price"`
}

type courseResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	TrailerURL  string  `json:"trailer_url,omitempty"`
}

func toCourseResponse(course domain.Course) courseResponse {
	return courseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Price:       course.Price,
		Description: course.Description,
		ImageURL:    course.ImageURL,
		TrailerURL:  course.TrailerURL,
	}
}
