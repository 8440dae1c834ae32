package controller

import (
	"net/http"

	"github.com/Freeeeeet/school_scheduler/internal/controller/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter собирает HTTP-маршруты сервиса
func NewRouter(h *handlers.Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestID)
	r.Use(handlers.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Route("/api/v1/schools/{schoolID}", func(r chi.Router) {
		r.Get("/week", h.HandleCurrentWeek)
		r.Put("/week-rotation", h.HandleSetWeekRotation)
		r.Delete("/slot-batches/{batchID}", h.HandleDeleteSlotBatch)

		r.Route("/classrooms", func(r chi.Router) {
			r.Get("/", h.HandleListClassrooms)
			r.Post("/", h.HandleCreateClassroom)

			r.Route("/{classroomID}", func(r chi.Router) {
				r.Delete("/", h.HandleDeleteClassroom)

				r.Route("/days/{day}", func(r chi.Router) {
					r.Get("/", h.HandleDaySchedule)
					r.Get("/image", h.HandleDayScheduleImage)
					r.Post("/slots", h.HandleCreateSlot)
					r.Post("/slots/batch", h.HandleCreateSlotBatch)
					r.Delete("/slots/{slotID}", h.HandleDeleteSlot)
				})
			})
		})
	})

	return r
}
