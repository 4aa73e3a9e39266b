// Package policy holds the ownership and role checks gating every mutation.
// The predicates are pure; HTTP-level enforcement lives in the middleware
// and handlers that call them.
package policy

import "github.com/sayalimunde/mini-lms/internal/models"

// CanCreateCourse reports whether u may create courses at all.
func CanCreateCourse(u models.Identity) bool {
	return u.IsInstructor()
}

// CanMutateCourse reports whether u may update or delete c. Ownership is
// the creator identity; a student set as creator still gets no access.
func CanMutateCourse(u models.Identity, c models.Course) bool {
	return u.IsInstructor() && u.ID == c.CreatedBy
}

// CanMutateLesson gates lesson mutations. Ownership is always evaluated
// against the parent course; lessons carry no owner field of their own.
func CanMutateLesson(u models.Identity, parent models.Course) bool {
	return CanMutateCourse(u, parent)
}
