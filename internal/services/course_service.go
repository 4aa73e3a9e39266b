package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sayalimunde/mini-lms/internal/metrics"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/policy"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
	"github.com/sayalimunde/mini-lms/internal/worker"
)

// ErrForbidden is returned when the actor lacks the role or ownership for
// a mutation.
var ErrForbidden = errors.New("forbidden")

// ErrValidation marks caller mistakes, wrapped so the HTTP layer can map
// them to 400 instead of a generic failure.
var ErrValidation = errors.New("validation")

type CourseService struct {
	courses repo.Courses
	lessons repo.Lessons
	wp      *worker.Pool
}

func NewCourseService(courses repo.Courses, lessons repo.Lessons, wp *worker.Pool) *CourseService {
	return &CourseService{courses: courses, lessons: lessons, wp: wp}
}

func (s *CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	return s.courses.Get(ctx, id)
}

// ListMine returns the actor's own courses, newest first.
func (s *CourseService) ListMine(ctx context.Context, actor models.Identity) ([]models.Course, error) {
	return s.courses.ListByInstructor(ctx, actor.ID)
}

// ListAll backs the student browsing view.
func (s *CourseService) ListAll(ctx context.Context) ([]models.Course, error) {
	return s.courses.ListAll(ctx)
}

func (s *CourseService) Create(ctx context.Context, actor models.Identity, c models.Course) (models.Course, error) {
	if !policy.CanCreateCourse(actor) {
		return models.Course{}, ErrForbidden
	}
	c.CreatedBy = actor.ID
	if err := c.Validate(); err != nil {
		return models.Course{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	created, err := s.courses.Create(ctx, c)
	if err != nil {
		return models.Course{}, err
	}
	metrics.CoursesCreated.Inc()
	return created, nil
}

func (s *CourseService) Update(ctx context.Context, actor models.Identity, id string, p models.CoursePatch) (models.Course, error) {
	existing, err := s.courses.Get(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	if !policy.CanMutateCourse(actor, existing) {
		return models.Course{}, ErrForbidden
	}
	if err := p.Validate(); err != nil {
		return models.Course{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.courses.Update(ctx, id, p)
}

// Delete removes a course and cascades to its lessons. Lesson deletes are
// fired concurrently and must all settle first; if any fails, the course
// row stays, possibly with a reduced lesson set. There is no rollback.
func (s *CourseService) Delete(ctx context.Context, actor models.Identity, id string) error {
	existing, err := s.courses.Get(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateCourse(actor, existing) {
		return ErrForbidden
	}

	lessons, err := s.lessons.ListByCourse(ctx, id)
	if err != nil {
		return err
	}

	fns := make([]func() error, len(lessons))
	for i, l := range lessons {
		lid := l.ID
		fns[i] = func() error { return s.lessons.Delete(ctx, lid) }
	}
	var failed int
	var first error
	for _, err := range s.wp.Batch(fns) {
		if err != nil {
			failed++
			if first == nil {
				first = err
			}
		}
	}
	if failed > 0 {
		metrics.CascadeDeletes.WithLabelValues("partial_failure").Inc()
		slog.Warn("cascade delete incomplete, course kept",
			"course_id", id, "failed", failed, "total", len(lessons))
		return fmt.Errorf("cascade delete: %d of %d lesson deletes failed: %w", failed, len(lessons), first)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		// lessons are already gone; accepted failure mode
		metrics.CascadeDeletes.WithLabelValues("partial_failure").Inc()
		return err
	}
	metrics.CascadeDeletes.WithLabelValues("ok").Inc()
	return nil
}
