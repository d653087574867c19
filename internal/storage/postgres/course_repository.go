package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

const courseColumns = `id, name, price, description, image_url, trailer_url`

func (r *CourseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY name`, courseColumns)

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.ImageURL, &c.TrailerURL); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) GetCourse(ctx context.Context, id string) (domain.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	var c domain.Course
	err := r.queryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.ImageURL, &c.TrailerURL)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Course{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Course{}, domain.ErrCourseNotFound
		}
		return domain.Course{}, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

func (r *CourseRepository) InsertCourse(ctx context.Context, course domain.Course) error {
	const stmt = `
INSERT INTO courses (id, name, price, description, image_url, trailer_url)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.exec(ctx, stmt, course.ID, course.Name, course.Price, course.Description, course.ImageURL, course.TrailerURL)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// InsertCourses writes a back-office import batch atomically.
func (r *CourseRepository) InsertCourses(ctx context.Context, courses []domain.Course) error {
	return withTx(ctx, r.pool, func(txCtx context.Context) error {
		for _, course := range courses {
			if err := r.InsertCourse(txCtx, course); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	const stmt = `DELETE FROM courses WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) UpdateCoursePrice(ctx context.Context, id string, price float64) error {
	const stmt = `UPDATE courses SET price = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, price)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update course price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *CourseRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *CourseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
