package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Freeeeeet/school_scheduler/internal/schedule"
	"github.com/Freeeeeet/school_scheduler/internal/service"
	"github.com/Freeeeeet/school_scheduler/internal/timeutil"
	"go.uber.org/zap"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(successResponse{Success: true, Data: data})
}

// writeError переводит ошибку в HTTP-ответ. Ошибки валидации кандидата
// исправимые: клиент показывает их пользователю и повторяет запрос.
func writeError(logger *zap.Logger, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	apiCode := "internal"
	message := "internal server error"

	switch {
	case errors.Is(err, timeutil.ErrFormat):
		code, apiCode, message = http.StatusBadRequest, "bad_time_format", err.Error()
	case errors.Is(err, schedule.ErrDurationOutOfRange):
		code, apiCode, message = http.StatusBadRequest, "duration_out_of_range", err.Error()
	case errors.Is(err, schedule.ErrTimeOutOfRange):
		code, apiCode, message = http.StatusBadRequest, "time_out_of_range", err.Error()
	case errors.Is(err, schedule.ErrSchoolMismatch):
		code, apiCode, message = http.StatusBadRequest, "school_mismatch", err.Error()
	case errors.Is(err, schedule.ErrOverlap):
		code, apiCode, message = http.StatusConflict, "overlap", err.Error()
	case errors.Is(err, service.ErrClassroomNotFound):
		code, apiCode, message = http.StatusNotFound, "classroom_not_found", err.Error()
	case errors.Is(err, service.ErrRotationNotConfigured):
		code, apiCode, message = http.StatusNotFound, "rotation_not_configured", err.Error()
	default:
		logger.Error("Request failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Success: false, Code: apiCode, Message: message})
}

func writeBadRequest(w http.ResponseWriter, apiCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(errorResponse{Success: false, Code: apiCode, Message: message})
}
