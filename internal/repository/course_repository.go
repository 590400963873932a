package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnhub/learnhub-backend/internal/model"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course. CreatorID is fixed at insert and only ever
// touched again through the owner-scoped update.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (title, description, image_url, price, creator_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Description, c.ImageURL, c.Price, c.CreatorID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateOwned updates a course only when creatorID owns it. Nil request
// fields bind as NULL, so COALESCE keeps the stored value for omitted keys.
// Returns false when the filter matched nothing (no such course, or someone
// else's).
func (r *CourseRepository) UpdateOwned(ctx context.Context, creatorID string, req *model.UpdateCourseRequest) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     image_url = COALESCE($3, image_url),
		     price = COALESCE($4, price),
		     updated_at = NOW()
		 WHERE id = $5 AND creator_id = $6`,
		req.Title, req.Description, req.ImageURL, req.Price, req.CourseID, creatorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteOwned removes a course with the same ownership filter as UpdateOwned.
func (r *CourseRepository) DeleteOwned(ctx context.Context, courseID, creatorID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM courses WHERE id = $1 AND creator_id = $2`, courseID, creatorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByCreator returns every course owned by creatorID.
func (r *CourseRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image_url, price, creator_id, created_at, updated_at
		 FROM courses WHERE creator_id = $1 ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// ListAll returns the unscoped public catalog.
func (r *CourseRepository) ListAll(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image_url, price, creator_id, created_at, updated_at
		 FROM courses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// GetByIDs resolves a set of course ids in one batched lookup.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, image_url, price, creator_id, created_at, updated_at
		 FROM courses WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func scanCourses(rows pgx.Rows) ([]model.Course, error) {
	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Price,
			&c.CreatorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
