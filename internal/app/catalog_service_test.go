package app

import (
	"context"
	"testing"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

func TestCatalogService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("AddCourse assigns an id and persists", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCourseRepo()
		svc := NewCatalogService(repo)

		course, err := svc.AddCourse(ctx, AddCourseInput{
			Name:        "Rust for Gophers",
			Price:       59,
			Description: "Borrow checker survival guide.",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if course.ID == "" {
			t.Fatalf("expected course ID to be set")
		}
		if _, ok := repo.courses[course.ID]; !ok {
			t.Fatalf("expected course persisted")
		}
	})

	t.Run("AddCourse rejects empty name and negative price", func(t *testing.T) {
		t.Parallel()
		svc := NewCatalogService(newFakeCourseRepo())

		if _, err := svc.AddCourse(ctx, AddCourseInput{Price: 10}); err != domain.ErrCourseNameRequired {
			t.Fatalf("expected ErrCourseNameRequired, got %v", err)
		}
		if _, err := svc.AddCourse(ctx, AddCourseInput{Name: "X", Price: -1}); err != domain.ErrInvalidPrice {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("BulkAddCourses rejects the whole batch on one bad row", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCourseRepo()
		svc := NewCatalogService(repo)

		_, err := svc.BulkAddCourses(ctx, []AddCourseInput{
			{Name: "Good", Price: 10},
			{Name: "", Price: 10},
		})
		if err != domain.ErrCourseNameRequired {
			t.Fatalf("expected ErrCourseNameRequired, got %v", err)
		}
		if len(repo.courses) != 0 {
			t.Fatalf("expected nothing written, got %d courses", len(repo.courses))
		}
	})

	t.Run("BulkAddCourses inserts every valid row", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCourseRepo()
		svc := NewCatalogService(repo)

		courses, err := svc.BulkAddCourses(ctx, []AddCourseInput{
			{Name: "A", Price: 10},
			{Name: "B", Price: 20},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(courses) != 2 || len(repo.courses) != 2 {
			t.Fatalf("expected 2 courses inserted, got %d returned / %d stored", len(courses), len(repo.courses))
		}
	})

	t.Run("UpdateCoursePrice validates input", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCourseRepo()
		repo.courses["c1"] = domain.Course{ID: "c1", Name: "Go", Price: 49}
		svc := NewCatalogService(repo)

		if err := svc.UpdateCoursePrice(ctx, "c1", -5); err != domain.ErrInvalidPrice {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if err := svc.UpdateCoursePrice(ctx, "c1", 99); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.courses["c1"].Price != 99 {
			t.Fatalf("expected price 99, got %v", repo.courses["c1"].Price)
		}
	})

	t.Run("DeleteCourse removes the course", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCourseRepo()
		repo.courses["c1"] = domain.Course{ID: "c1", Name: "Go"}
		svc := NewCatalogService(repo)

		if err := svc.DeleteCourse(ctx, "c1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := repo.courses["c1"]; ok {
			t.Fatalf("expected course deleted")
		}
		if err := svc.DeleteCourse(ctx, "missing"); err != domain.ErrCourseNotFound {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})
}

type fakeCourseRepo struct {
	courses map[string]domain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]domain.Course)}
}

func (f *fakeCourseRepo) ListCourses(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, 0, len(f.courses))
	for _, course := range f.courses {
		out = append(out, course)
	}
	return out, nil
}

func (f *fakeCourseRepo) GetCourse(_ context.Context, id string) (domain.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) InsertCourse(_ context.Context, course domain.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) InsertCourses(_ context.Context, courses []domain.Course) error {
	for _, course := range courses {
		f.courses[course.ID] = course
	}
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) UpdateCoursePrice(_ context.Context, id string, price float64) error {
	course, ok := f.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	course.Price = price
	f.courses[id] = course
	return nil
}
