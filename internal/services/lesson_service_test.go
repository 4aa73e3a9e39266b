package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sayalimunde/mini-lms/internal/models"
	repo "github.com/sayalimunde/mini-lms/internal/repository"
)

func TestLessonCreateAppendsOrder(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)

	for i, title := range []string{"one", "two", "three"} {
		l := mustCreateLesson(t, lsvc, instructorA, c.ID, title)
		if l.Order != i+1 {
			t.Fatalf("lesson %q order = %d, want %d", title, l.Order, i+1)
		}
	}
}

func TestLessonCreateAfterDeleteLeavesGap(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	mustCreateLesson(t, lsvc, instructorA, c.ID, "one")
	l2 := mustCreateLesson(t, lsvc, instructorA, c.ID, "two")
	l3 := mustCreateLesson(t, lsvc, instructorA, c.ID, "three")

	if err := lsvc.Delete(context.Background(), instructorA, l2.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// gap at 2 stays; next append goes after the max, not into the gap
	l4 := mustCreateLesson(t, lsvc, instructorA, c.ID, "four")
	if l4.Order != l3.Order+1 {
		t.Fatalf("append after delete: order = %d, want %d", l4.Order, l3.Order+1)
	}

	left, err := lsvc.ListByCourse(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	orders := []int{}
	for _, l := range left {
		orders = append(orders, l.Order)
	}
	if len(orders) != 3 || orders[0] != 1 || orders[1] != 3 || orders[2] != 4 {
		t.Fatalf("orders after delete = %v, want [1 3 4]", orders)
	}
}

func TestLessonCreateForNonOwnerForbidden(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)

	_, err := lsvc.Create(context.Background(), instructorB, models.Lesson{
		Title:    "sneaky",
		VideoURL: "https://youtu.be/abc",
		CourseID: c.ID,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
}

func TestLessonCreateCourseNotFound(t *testing.T) {
	_, lsvc, _, _ := newCourseFixture(t)
	_, err := lsvc.Create(context.Background(), instructorA, models.Lesson{
		Title:    "x",
		VideoURL: "https://youtu.be/abc",
		CourseID: "missing",
	})
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListByCourseEmpty(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)

	lessons, err := lsvc.ListByCourse(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("empty course must not error: %v", err)
	}
	if lessons == nil || len(lessons) != 0 {
		t.Fatalf("got %v, want empty slice", lessons)
	}
}

func TestReorderAssignsPositionalValues(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l1 := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")
	l2 := mustCreateLesson(t, lsvc, instructorA, c.ID, "two")
	l3 := mustCreateLesson(t, lsvc, instructorA, c.ID, "three")

	// drag position 3 to position 1: [l1 l2 l3] -> [l3 l1 l2]
	if err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l3.ID, l1.ID, l2.ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	got, err := lsvc.ListByCourse(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantIDs := []string{l3.ID, l1.ID, l2.ID}
	for i, l := range got {
		if l.ID != wantIDs[i] {
			t.Fatalf("position %d = %s, want %s", i+1, l.ID, wantIDs[i])
		}
		if l.Order != i+1 {
			t.Fatalf("lesson %s order = %d, want %d", l.ID, l.Order, i+1)
		}
	}
}

func TestReorderNormalizesGappedOrders(t *testing.T) {
	csvc, lsvc, _, lessons := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l1 := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")
	l2 := mustCreateLesson(t, lsvc, instructorA, c.ID, "two")
	l3 := mustCreateLesson(t, lsvc, instructorA, c.ID, "three")
	ldel := mustCreateLesson(t, lsvc, instructorA, c.ID, "gone")
	if err := lsvc.Delete(context.Background(), instructorA, ldel.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// save without changing positions still assigns exactly {1..N}
	if err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l1.ID, l2.ID, l3.ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	got, _ := lessons.ListByCourse(context.Background(), c.ID)
	for i, l := range got {
		if l.Order != i+1 {
			t.Fatalf("order values not dense after save: %v at %d", l.Order, i)
		}
	}
}

func TestReorderPartialFailureReportsBatch(t *testing.T) {
	csvc, lsvc, _, lessons := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l1 := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")
	l2 := mustCreateLesson(t, lsvc, instructorA, c.ID, "two")
	lessons.failOrder[l1.ID] = errors.New("store down")

	err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l2.ID, l1.ID})
	if err == nil {
		t.Fatal("partial failure must surface as a batch error")
	}
	// no rollback: l2's new order value sticks
	got, _ := lessons.Get(context.Background(), l2.ID)
	if got.Order != 1 {
		t.Fatalf("l2 order = %d, want 1 (successful sub-update kept)", got.Order)
	}
}

func TestReorderRejectsForeignOrIncompleteSet(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	other := mustCreateCourse(t, csvc, instructorA)
	l1 := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")
	l2 := mustCreateLesson(t, lsvc, instructorA, c.ID, "two")
	foreign := mustCreateLesson(t, lsvc, instructorA, other.ID, "foreign")

	if err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l1.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("incomplete set: got %v, want ErrValidation", err)
	}
	if err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l1.ID, foreign.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("foreign lesson: got %v, want ErrValidation", err)
	}
	if err := lsvc.Reorder(context.Background(), instructorA, c.ID, []string{l1.ID, l1.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate id: got %v, want ErrValidation", err)
	}
	_ = l2
}

func TestReorderForbiddenForNonOwner(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l1 := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")

	if err := lsvc.Reorder(context.Background(), instructorB, c.ID, []string{l1.ID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if err := lsvc.Reorder(context.Background(), student, c.ID, []string{l1.ID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("student: got %v, want ErrForbidden", err)
	}
}

func TestLessonUpdateKeepsCourseBinding(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")

	title := "renamed"
	updated, err := lsvc.Update(context.Background(), instructorA, l.ID, models.LessonPatch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CourseID != c.ID {
		t.Fatalf("CourseID changed to %q", updated.CourseID)
	}
	if updated.Order != l.Order {
		t.Fatalf("Order changed by content update: %d -> %d", l.Order, updated.Order)
	}
}

func TestLessonUpdateRejectsBadVideoURL(t *testing.T) {
	csvc, lsvc, _, _ := newCourseFixture(t)
	c := mustCreateCourse(t, csvc, instructorA)
	l := mustCreateLesson(t, lsvc, instructorA, c.ID, "one")

	bad := "ftp://example.com/video.mp4"
	if _, err := lsvc.Update(context.Background(), instructorA, l.ID, models.LessonPatch{VideoURL: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}
