package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// EnrollCourses grants access to each course; courses the user already
// owns are left untouched, keeping repeated confirmations harmless.
func (r *EnrollmentRepository) EnrollCourses(ctx context.Context, userID string, courseNames []string, at time.Time) error {
	const stmt = `
INSERT INTO enrollments (user_id, course_name, enrolled_at, progress)
VALUES ($1, $2, $3, 0)
ON CONFLICT (user_id, course_name) DO NOTHING`

	for _, name := range courseNames {
		if _, err := r.exec(ctx, stmt, userID, name, at); err != nil {
			return fmt.Errorf("enroll course %q: %w", name, err)
		}
	}
	return nil
}

func (r *EnrollmentRepository) ListEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	const query = `
SELECT user_id, course_name, enrolled_at, progress, last_accessed
FROM enrollments
WHERE user_id = $1
ORDER BY enrolled_at DESC`

	rows, err := r.query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := make([]domain.Enrollment, 0)
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.UserID, &e.CourseName, &e.EnrolledAt, &e.Progress, &e.LastAccessed); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, userID, courseName string, progress int, accessedAt time.Time) error {
	const stmt = `
UPDATE enrollments
SET progress = $3, last_accessed = $4
WHERE user_id = $1 AND course_name = $2`

	tag, err := r.exec(ctx, stmt, userID, courseName, progress, accessedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnrolled
	}
	return nil
}

func (r *EnrollmentRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EnrollmentRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
