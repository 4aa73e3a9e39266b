package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CoursesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "courses_created_total",
			Help: "Total courses created",
		},
	)
	LessonsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lessons_created_total",
			Help: "Total lessons created",
		},
	)
	ReorderBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesson_reorder_batches_total",
			Help: "Reorder-save batches by outcome",
		},
		[]string{"outcome"}, // ok|partial_failure
	)
	CascadeDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "course_cascade_deletes_total",
			Help: "Course cascade deletes by outcome",
		},
		[]string{"outcome"},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(CoursesCreated)
	prometheus.MustRegister(LessonsCreated)
	prometheus.MustRegister(ReorderBatches)
	prometheus.MustRegister(CascadeDeletes)
}
