package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sayalimunde/mini-lms/internal/models"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

type coursesRepo struct{ pool *pgxpool.Pool }

const courseCols = `id, title, description, category, created_by, created_at, updated_at`

func (r *coursesRepo) Create(ctx context.Context, c models.Course) (models.Course, error) {
	c.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO courses(id, title, description, category, created_by, created_at, updated_at)
         VALUES($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Title, c.Description, c.Category, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return models.Course{}, err
	}
	return c, nil
}

func (r *coursesRepo) Get(ctx context.Context, id string) (models.Course, error) {
	var c models.Course
	err := r.pool.QueryRow(ctx,
		`SELECT `+courseCols+` FROM courses WHERE id=$1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Course{}, mapErr(err)
	}
	return c, nil
}

func (r *coursesRepo) ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseCols+` FROM courses WHERE created_by=$1 ORDER BY created_at DESC`,
		instructorID,
	)
	if err != nil {
		return nil, mapIndexErr(err, "courses by created_by ordered by created_at")
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *coursesRepo) ListAll(ctx context.Context) ([]models.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+courseCols+` FROM courses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

// Update merges the patch: nil fields keep their stored values. created_by
// and created_at are never part of the SET list.
func (r *coursesRepo) Update(ctx context.Context, id string, p models.CoursePatch) (models.Course, error) {
	var c models.Course
	err := r.pool.QueryRow(ctx,
		`UPDATE courses
            SET title       = COALESCE($2, title),
                description = COALESCE($3, description),
                category    = COALESCE($4, category),
                updated_at  = $5
          WHERE id = $1
      RETURNING `+courseCols,
		id, p.Title, p.Description, p.Category, time.Now().UnixMilli(),
	).Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Course{}, mapErr(err)
	}
	return c, nil
}

func (r *coursesRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func scanCourses(rows pgx.Rows) ([]models.Course, error) {
	out := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
