package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/models"
	"github.com/sayalimunde/mini-lms/internal/services"
)

type LessonHandler struct {
	svc *services.LessonService
}

func NewLessonHandler(svc *services.LessonService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

// ListByCourse returns the course's lessons in display order. A course
// with no lessons yields an empty array, not an error.
func (h *LessonHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.svc.ListByCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lessons)
}

func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lesson)
}

type lessonReq struct {
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
	Content  string `json:"content"`
}

// Create appends a lesson at the end of the course's order.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var req lessonReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	lesson, err := h.svc.Create(r.Context(), actor, models.Lesson{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Content:  req.Content,
		CourseID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, lesson)
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var patch models.LessonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	lesson, err := h.svc.Update(r.Context(), actor, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lesson)
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

type reorderReq struct {
	// LessonIDs is the course's full lesson sequence in its new order;
	// position becomes the order value (1-based).
	LessonIDs []string `json:"lesson_ids"`
}

// Reorder commits a drag-reposition permutation. The N updates run
// concurrently without a transaction; one outcome is reported for the
// whole batch.
func (h *LessonHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var req reorderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.LessonIDs) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "lesson_ids required", nil)
		return
	}
	if err := h.svc.Reorder(r.Context(), actor, chi.URLParam(r, "id"), req.LessonIDs); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
