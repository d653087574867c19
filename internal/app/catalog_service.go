package app

import (
	"context"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// CourseRepository is the storage contract for the course catalog.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (domain.Course, error)
	InsertCourse(ctx context.Context, course domain.Course) error
	InsertCourses(ctx context.Context, courses []domain.Course) error
	DeleteCourse(ctx context.Context, id string) error
	UpdateCoursePrice(ctx context.Context, id string, price float64) error
}

// CatalogService manages the storefront catalog and its admin surface.
type CatalogService struct {
	repo CourseRepository
}

func NewCatalogService(repo CourseRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *CatalogService) GetCourse(ctx context.Context, id string) (domain.Course, error) {
	if id == "" {
		return domain.Course{}, domain.ErrInvalidID
	}
	return s.repo.GetCourse(ctx, id)
}

type AddCourseInput struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	TrailerURL  string
}

func (in AddCourseInput) validate() error {
	if in.Name == "" {
		return domain.ErrCourseNameRequired
	}
	if in.Price < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

func (s *CatalogService) AddCourse(ctx context.Context, in AddCourseInput) (domain.Course, error) {
	if err := in.validate(); err != nil {
		return domain.Course{}, err
	}

	course := domain.Course{
		ID:          newID(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		TrailerURL:  in.TrailerURL,
	}
	if err := s.repo.InsertCourse(ctx, course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

// BulkAddCourses inserts pre-parsed rows from the back-office import.
// Rows failing validation reject the whole batch; nothing is written.
func (s *CatalogService) BulkAddCourses(ctx context.Context, rows []AddCourseInput) ([]domain.Course, error) {
	courses := make([]domain.Course, 0, len(rows))
	for _, in := range rows {
		if err := in.validate(); err != nil {
			return nil, err
		}
		courses = append(courses, domain.Course{
			ID:          newID(),
			Name:        in.Name,
			Price:       in.Price,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			TrailerURL:  in.TrailerURL,
		})
	}
	if len(courses) == 0 {
		return nil, nil
	}
	if err := s.repo.InsertCourses(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteCourse(ctx, id)
}

func (s *CatalogService) UpdateCoursePrice(ctx context.Context, id string, price float64) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	if price < 0 {
		return domain.ErrInvalidPrice
	}
	return s.repo.UpdateCoursePrice(ctx, id, price)
}
