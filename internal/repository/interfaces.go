package repository

import (
	"context"

	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/ordering"
)

type Users interface {
	Create(ctx context.Context, email, displayName, passwordHash string, role models.Role) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Courses interface {
	Create(ctx context.Context, c models.Course) (models.Course, error)
	Get(ctx context.Context, id string) (models.Course, error)
	// ListByInstructor returns the instructor's courses newest first;
	// an instructor with no courses gets an empty slice.
	ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error)
	// ListAll backs the student browsing view; no guaranteed order.
	ListAll(ctx context.Context) ([]models.Course, error)
	// Update merges the patch into the record and bumps updated_at.
	// CreatedBy and CreatedAt are never written.
	Update(ctx context.Context, id string, p models.CoursePatch) (models.Course, error)
	Delete(ctx context.Context, id string) error
}

type Lessons interface {
	Create(ctx context.Context, l models.Lesson) (models.Lesson, error)
	Get(ctx context.Context, id string) (models.Lesson, error)
	// ListByCourse returns a course's lessons by ascending order value.
	// This is the compound equality+ordering query that can surface a
	// MissingIndexError when the composite index is absent.
	ListByCourse(ctx context.Context, courseID string) ([]models.Lesson, error)
	Update(ctx context.Context, id string, p models.LessonPatch) (models.Lesson, error)
	Delete(ctx context.Context, id string) error
	// UpdateOrder writes one reorder assignment, bumping updated_at.
	UpdateOrder(ctx context.Context, a ordering.Assignment) error
}
