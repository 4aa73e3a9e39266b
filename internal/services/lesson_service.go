package services

import (
	"context"
	"fmt"

	"github.com/sayalimunde/mini-lms/internal/metrics"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/ordering"
	"github.com/sayalimunde/mini-lms/internal/policy"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
	"github.com/sayalimunde/mini-lms/internal/worker"
)

type LessonService struct {
	courses repo.Courses
	lessons repo.Lessons
	wp      *worker.Pool
}

func NewLessonService(courses repo.Courses, lessons repo.Lessons, wp *worker.Pool) *LessonService {
	return &LessonService{courses: courses, lessons: lessons, wp: wp}
}

func (s *LessonService) Get(ctx context.Context, id string) (models.Lesson, error) {
	return s.lessons.Get(ctx, id)
}

func (s *LessonService) ListByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	return s.lessons.ListByCourse(ctx, courseID)
}

// Create appends a lesson to the course: order is max existing + 1, or 1
// for the first lesson. The read-then-write is not compare-and-swap; two
// racing creates can land on the same order value, which display sorting
// tolerates.
func (s *LessonService) Create(ctx context.Context, actor models.Identity, l models.Lesson) (models.Lesson, error) {
	course, err := s.courses.Get(ctx, l.CourseID)
	if err != nil {
		return models.Lesson{}, err
	}
	if !policy.CanMutateLesson(actor, course) {
		return models.Lesson{}, ErrForbidden
	}
	if err := l.Validate(); err != nil {
		return models.Lesson{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.lessons.ListByCourse(ctx, l.CourseID)
	if err != nil {
		return models.Lesson{}, err
	}
	orders := make([]int, len(existing))
	for i, e := range existing {
		orders[i] = e.Order
	}
	l.Order = ordering.Next(orders)

	created, err := s.lessons.Create(ctx, l)
	if err != nil {
		return models.Lesson{}, err
	}
	metrics.LessonsCreated.Inc()
	return created, nil
}

func (s *LessonService) Update(ctx context.Context, actor models.Identity, id string, p models.LessonPatch) (models.Lesson, error) {
	existing, err := s.lessons.Get(ctx, id)
	if err != nil {
		return models.Lesson{}, err
	}
	course, err := s.courses.Get(ctx, existing.CourseID)
	if err != nil {
		return models.Lesson{}, err
	}
	if !policy.CanMutateLesson(actor, course) {
		return models.Lesson{}, ErrForbidden
	}
	if err := p.Validate(); err != nil {
		return models.Lesson{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.lessons.Update(ctx, id, p)
}

// Delete removes one lesson. Remaining lessons keep their order values;
// gaps are never closed.
func (s *LessonService) Delete(ctx context.Context, actor models.Identity, id string) error {
	existing, err := s.lessons.Get(ctx, id)
	if err != nil {
		return err
	}
	course, err := s.courses.Get(ctx, existing.CourseID)
	if err != nil {
		return err
	}
	if !policy.CanMutateLesson(actor, course) {
		return ErrForbidden
	}
	return s.lessons.Delete(ctx, id)
}

// Reorder commits a saved permutation: ids carries the course's lessons in
// their new sequence, and each gets order = its 1-based position. The N
// updates are issued concurrently with no transaction; a partial failure
// leaves a mix of old and new order values and reports one error for the
// whole batch.
func (s *LessonService) Reorder(ctx context.Context, actor models.Identity, courseID string, ids []string) error {
	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return err
	}
	if !policy.CanMutateLesson(actor, course) {
		return ErrForbidden
	}

	current, err := s.lessons.ListByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if err := checkPermutation(current, ids); err != nil {
		return err
	}

	assignments := ordering.Assignments(ids)
	fns := make([]func() error, len(assignments))
	for i, a := range assignments {
		a := a
		fns[i] = func() error { return s.lessons.UpdateOrder(ctx, a) }
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
		metrics.ReorderBatches.WithLabelValues("partial_failure").Inc()
		return fmt.Errorf("reorder: %d of %d updates failed: %w", failed, len(assignments), first)
	}
	metrics.ReorderBatches.WithLabelValues("ok").Inc()
	return nil
}

// checkPermutation rejects a reorder that is not exactly the course's
// current lesson set.
func checkPermutation(current []models.Lesson, ids []string) error {
	if len(ids) != len(current) {
		return fmt.Errorf("%w: reorder must include every lesson of the course exactly once", ErrValidation)
	}
	inCourse := make(map[string]bool, len(current))
	for _, l := range current {
		inCourse[l.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !inCourse[id] {
			return fmt.Errorf("%w: lesson %s does not belong to the course", ErrValidation, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: lesson %s listed twice", ErrValidation, id)
		}
		seen[id] = true
	}
	return nil
}
