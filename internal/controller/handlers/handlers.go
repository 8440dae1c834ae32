package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Freeeeeet/school_scheduler/internal/service"
)

type Handlers struct {
	scheduleService  *service.ScheduleService
	classroomService *service.ClassroomService
	validate         *validator.Validate
	logger           *zap.Logger
}

func NewHandlers(
	scheduleService *service.ScheduleService,
	classroomService *service.ClassroomService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		scheduleService:  scheduleService,
		classroomService: classroomService,
		validate:         validator.New(),
		logger:           logger,
	}
}

func urlInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}

func urlDay(r *http.Request) (model.Day, bool) {
	return model.ParseDay(chi.URLParam(r, "day"))
}
