package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sayalimunde/mini-lms/internal/api/handlers"
	"github.com/sayalimunde/mini-lms/internal/api/httpx"
	"github.com/sayalimunde/mini-lms/internal/config"
	"github.com/sayalimunde/mini-lms/internal/metrics"
	"github.com/sayalimunde/mini-lms/internal/middleware"
	"github.com/sayalimunde/mini-lms/internal/services"
)

type RouterDeps struct {
	Cfg       config.Config
	Auth      *middleware.AuthMiddleware
	AuthSvc   *services.AuthService
	CourseSvc *services.CourseService
	LessonSvc *services.LessonService
}

func NewRouter(d RouterDeps) http.Handler {
	authH := handlers.NewAuthHandler(d.AuthSvc)
	courseH := handlers.NewCourseHandler(d.CourseSvc)
	lessonH := handlers.NewLessonHandler(d.LessonSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// public
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		// authenticated, any role
		r.Group(func(r chi.Router) {
			r.Use(d.Auth.Require)
			r.Post("/auth/logout", authH.Logout)

			r.Get("/courses", courseH.ListAll)
			r.Get("/courses/{id}", courseH.Get)
			r.Get("/courses/{id}/lessons", lessonH.ListByCourse)
			r.Get("/lessons/{id}", lessonH.Get)

			// instructor-only; ownership is checked in the services
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireInstructor)
				r.Get("/courses/mine", courseH.ListMine)
				r.Post("/courses", courseH.Create)
				r.Put("/courses/{id}", courseH.Update)
				r.Delete("/courses/{id}", courseH.Delete)
				r.Post("/courses/{id}/lessons", lessonH.Create)
				r.Put("/courses/{id}/lessons/order", lessonH.Reorder)
				r.Put("/lessons/{id}", lessonH.Update)
				r.Delete("/lessons/{id}", lessonH.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}
