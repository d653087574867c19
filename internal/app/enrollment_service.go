package app

import (
	"context"
	"time"

	"github.com/onu24/learnsphere-v1/internal/clock"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// EnrollmentRepository stores course access granted by purchases.
type EnrollmentRepository interface {
	EnrollCourses(ctx context.Context, userID string, courseNames []string, at time.Time) error
	ListEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateProgress(ctx context.Context, userID, courseName string, progress int, accessedAt time.Time) error
}

// EnrollmentService tracks which courses a user owns and how far along
// they are.
type EnrollmentService struct {
	repo  EnrollmentRepository
	clock clock.Clock
}

func NewEnrollmentService(repo EnrollmentRepository, clk clock.Clock) *EnrollmentService {
	return &EnrollmentService{repo: repo, clock: clk}
}

// EnrollInCourses grants access to the named courses. Re-enrolling in an
// owned course is a no-op, so repeated order confirmations are harmless.
func (s *EnrollmentService) EnrollInCourses(ctx context.Context, userID string, courseNames []string, at time.Time) error {
	if userID == "" {
		return domain.ErrInvalidID
	}
	if len(courseNames) == 0 {
		return nil
	}
	return s.repo.EnrollCourses(ctx, userID, courseNames, at)
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	if userID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListEnrollments(ctx, userID)
}

// UpdateProgress records completion percentage and bumps last access.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, userID, courseName string, progress int) error {
	if userID == "" || courseName == "" {
		return domain.ErrInvalidID
	}
	if progress < 0 || progress > 100 {
		return domain.ErrInvalidProgress
	}
	return s.repo.UpdateProgress(ctx, userID, courseName, progress, s.clock.Now())
}
