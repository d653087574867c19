package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) ListWishlist(ctx context.Context, userID string) ([]domain.Course, error) {
	const query = `
SELECT c.id, c.name, c.price, c.description, c.image_url, c.trailer_url
FROM wishlists w
JOIN courses c ON c.id = w.course_id
WHERE w.user_id = $1
ORDER BY w.added_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.ImageURL, &c.TrailerURL); err != nil {
			return nil, fmt.Errorf("scan wishlist course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return courses, nil
}

// AddToWishlist is idempotent; wishing for an already-saved course keeps
// the original entry.
func (r *WishlistRepository) AddToWishlist(ctx context.Context, userID, courseID string) error {
	const stmt = `
INSERT INTO wishlists (user_id, course_id)
VALUES ($1, $2)
ON CONFLICT (user_id, course_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, stmt, userID, courseID); err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (r *WishlistRepository) RemoveFromWishlist(ctx context.Context, userID, courseID string) error {
	const stmt = `DELETE FROM wishlists WHERE user_id = $1 AND course_id = $2`

	if _, err := r.pool.Exec(ctx, stmt, userID, courseID); err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}
