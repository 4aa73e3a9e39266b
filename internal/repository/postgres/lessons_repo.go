package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/ordering"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

type lessonsRepo struct{ pool *pgxpool.Pool }

const lessonCols = `id, title, video_url, content, course_id, "order", created_at, updated_at`

func (r *lessonsRepo) Create(ctx context.Context, l models.Lesson) (models.Lesson, error) {
	l.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	l.CreatedAt, l.UpdatedAt = now, now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO lessons(id, title, video_url, content, course_id, "order", created_at, updated_at)
         VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
		l.ID, l.Title, l.VideoURL, l.Content, l.CourseID, l.Order, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return models.Lesson{}, err
	}
	return l, nil
}

func (r *lessonsRepo) Get(ctx context.Context, id string) (models.Lesson, error) {
	var l models.Lesson
	err := r.pool.QueryRow(ctx,
		`SELECT `+lessonCols+` FROM lessons WHERE id=$1`, id,
	).Scan(&l.ID, &l.Title, &l.VideoURL, &l.Content, &l.CourseID, &l.Order, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return models.Lesson{}, mapErr(err)
	}
	return l, nil
}

// ListByCourse is the compound equality+ordering query backed by the
// lessons(course_id, "order") composite index. Duplicate order values from
// racing creates are tolerated; id breaks the tie deterministically.
func (r *lessonsRepo) ListByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+lessonCols+` FROM lessons WHERE course_id=$1 ORDER BY "order" ASC, id ASC`,
		courseID,
	)
	if err != nil {
		return nil, mapIndexErr(err, "lessons by course_id ordered by order")
	}
	defer rows.Close()

	out := []models.Lesson{}
	for rows.Next() {
		var l models.Lesson
		if err := rows.Scan(&l.ID, &l.Title, &l.VideoURL, &l.Content, &l.CourseID, &l.Order, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update merges the patch; course_id and created_at are never written.
func (r *lessonsRepo) Update(ctx context.Context, id string, p models.LessonPatch) (models.Lesson, error) {
	var l models.Lesson
	err := r.pool.QueryRow(ctx,
		`UPDATE lessons
            SET title      = COALESCE($2, title),
                video_url  = COALESCE($3, video_url),
                content    = COALESCE($4, content),
                updated_at = $5
          WHERE id = $1
      RETURNING `+lessonCols,
		id, p.Title, p.VideoURL, p.Content, time.Now().UnixMilli(),
	).Scan(&l.ID, &l.Title, &l.VideoURL, &l.Content, &l.CourseID, &l.Order, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return models.Lesson{}, mapErr(err)
	}
	return l, nil
}

// Delete removes one lesson. Remaining order values are not renumbered;
// gaps are fine.
func (r *lessonsRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM lessons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *lessonsRepo) UpdateOrder(ctx context.Context, a ordering.Assignment) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE lessons SET "order"=$2, updated_at=$3 WHERE id=$1`,
		a.ID, a.Order, time.Now().UnixMilli(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
