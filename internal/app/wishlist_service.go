package app

import (
	"context"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// WishlistRepository stores per-user course wishlists.
type WishlistRepository interface {
	ListWishlist(ctx context.Context, userID string) ([]domain.Course, error)
	AddToWishlist(ctx context.Context, userID, courseID string) error
	RemoveFromWishlist(ctx context.Context, userID, courseID string) error
}

// WishlistService saves courses a signed-in user wants to buy later.
type WishlistService struct {
	repo    WishlistRepository
	catalog CourseRepository
}

func NewWishlistService(repo WishlistRepository, catalog CourseRepository) *WishlistService {
	return &WishlistService{repo: repo, catalog: catalog}
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]domain.Course, error) {
	if userID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListWishlist(ctx, userID)
}

// Add is idempotent: wishing for a course twice keeps one entry.
func (s *WishlistService) Add(ctx context.Context, userID, courseID string) error {
	if userID == "" || courseID == "" {
		return domain.ErrInvalidID
	}
	if _, err := s.catalog.GetCourse(ctx, courseID); err != nil {
		return err
	}
	return s.repo.AddToWishlist(ctx, userID, courseID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, courseID string) error {
	if userID == "" || courseID == "" {
		return domain.ErrInvalidID
	}
	return s.repo.RemoveFromWishlist(ctx, userID, courseID)
}
