package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/api/validate"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/services"
)

type CourseHandler struct {
	svc *services.CourseService
}

func NewCourseHandler(svc *services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// ListAll is the student browsing view: every course, no guaranteed order.
func (h *CourseHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, courses)
}

// ListMine is the instructor dashboard: own courses, newest first.
func (h *CourseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	courses, err := h.svc.ListMine(r.Context(), actor)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, course)
}

type courseReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var req courseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	var errs validate.Errs
	if e := validate.Required("title", req.Title); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("title", req.Title, 100); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.OneOf("category", req.Category, models.Categories); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation", errs.Error(), errs)
		return
	}

	course, err := h.svc.Create(r.Context(), actor, models.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var patch models.CoursePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	course, err := h.svc.Update(r.Context(), actor, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, course)
}

// Delete cascades: the course's lessons are deleted first, the course
// last. A partial failure keeps the course.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
