package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Freeeeeet/school_scheduler/internal/controller/render"
	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// HandleDaySchedule отдаёт слоты кабинета на день вместе с разбиением окна
// 08:00–22:00 на занятые и свободные интервалы. Параметр ?date=YYYY-MM-DD
// фильтрует слоты по активной на эту дату неделе чередования.
func (h *Handlers) HandleDaySchedule(w http.ResponseWriter, r *http.Request) {
	schoolID, classroomID, day, ok := h.scheduleContext(w, r)
	if !ok {
		return
	}

	onDate, ok := h.optionalDate(w, r)
	if !ok {
		return
	}

	overview, err := h.scheduleService.DayOverview(r.Context(), schoolID, classroomID, day, onDate)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newDayScheduleResponse(overview))
}

// HandleDayScheduleImage отдаёт то же расписание картинкой PNG
func (h *Handlers) HandleDayScheduleImage(w http.ResponseWriter, r *http.Request) {
	schoolID, classroomID, day, ok := h.scheduleContext(w, r)
	if !ok {
		return
	}

	onDate, ok := h.optionalDate(w, r)
	if !ok {
		return
	}

	overview, err := h.scheduleService.DayOverview(r.Context(), schoolID, classroomID, day, onDate)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	png, err := render.DayImage(day, overview.Slots, overview.FreeBusy, overview.ActiveWeek)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// HandleCreateSlot валидирует и сохраняет один слот
func (h *Handlers) HandleCreateSlot(w http.ResponseWriter, r *http.Request) {
	schoolID, classroomID, day, ok := h.scheduleContext(w, r)
	if !ok {
		return
	}

	var req SlotRequest
	if !h.decode(w, r, &req) {
		return
	}

	slot, err := req.ToModel(classroomID, day)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	if err := h.scheduleService.CreateSlot(r.Context(), schoolID, &slot); err != nil {
		writeError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newSlotResponse(slot))
}

// HandleCreateSlotBatch сохраняет группу слотов кабинета на день целиком
func (h *Handlers) HandleCreateSlotBatch(w http.ResponseWriter, r *http.Request) {
	schoolID, classroomID, day, ok := h.scheduleContext(w, r)
	if !ok {
		return
	}

	var req SlotBatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	slots := make([]*model.Slot, 0, len(req.Slots))
	for _, slotReq := range req.Slots {
		slot, err := slotReq.ToModel(classroomID, day)
		if err != nil {
			writeError(h.logger, w, err)
			return
		}
		slots = append(slots, &slot)
	}

	if err := h.scheduleService.CreateSlotBatch(r.Context(), schoolID, classroomID, day, slots); err != nil {
		writeError(h.logger, w, err)
		return
	}

	out := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, newSlotResponse(*slot))
	}
	writeJSON(w, http.StatusCreated, out)
}

// HandleDeleteSlotBatch удаляет все слоты одной групповой операции;
// пустая или уже удалённая группа тоже отвечает 204
func (h *Handlers) HandleDeleteSlotBatch(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	batchID, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		writeBadRequest(w, "bad_batch_id", "batchId must be a UUID")
		return
	}

	if err := h.scheduleService.DeleteSlotBatch(r.Context(), schoolID, batchID); err != nil {
		writeError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteSlot удаляет слот; удаление уже удалённого тоже отвечает 204
func (h *Handlers) HandleDeleteSlot(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	day, ok := urlDay(r)
	if !ok {
		writeBadRequest(w, "bad_day", "day must be one of mon..sat")
		return
	}

	slotID, err := urlInt64(r, "slotID")
	if err != nil {
		writeBadRequest(w, "bad_slot_id", err.Error())
		return
	}

	if err := h.scheduleService.DeleteSlot(r.Context(), schoolID, day, slotID); err != nil {
		writeError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCurrentWeek возвращает активную неделю чередования школы на дату
// (?date=YYYY-MM-DD, по умолчанию сегодня)
func (h *Handlers) HandleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = time.Parse(dateLayout, raw)
		if err != nil {
			writeBadRequest(w, "bad_date", "date must be YYYY-MM-DD")
			return
		}
	}

	week, err := h.scheduleService.CurrentWeek(r.Context(), schoolID, date)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, CurrentWeekResponse{
		Date:     date.Format(dateLayout),
		WeekType: string(week),
	})
}

// HandleSetWeekRotation перепривязывает чередование недель школы
func (h *Handlers) HandleSetWeekRotation(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	var req WeekRotationRequest
	if !h.decode(w, r, &req) {
		return
	}

	referenceDate, err := time.Parse(dateLayout, req.ReferenceDate)
	if err != nil {
		writeBadRequest(w, "bad_date", "referenceDate must be YYYY-MM-DD")
		return
	}

	setting, err := h.scheduleService.SetWeekRotation(r.Context(), schoolID, model.Week(req.WeekType), referenceDate)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, WeekRotationResponse{
		WeekType:      string(setting.ReferenceWeekType),
		ReferenceDate: setting.ReferenceDate.Format(dateLayout),
	})
}

func (h *Handlers) scheduleContext(w http.ResponseWriter, r *http.Request) (schoolID, classroomID int64, day model.Day, ok bool) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return 0, 0, "", false
	}

	classroomID, err = urlInt64(r, "classroomID")
	if err != nil {
		writeBadRequest(w, "bad_classroom_id", err.Error())
		return 0, 0, "", false
	}

	day, ok = urlDay(r)
	if !ok {
		writeBadRequest(w, "bad_day", "day must be one of mon..sat")
		return 0, 0, "", false
	}

	return schoolID, classroomID, day, true
}

func (h *Handlers) optionalDate(w http.ResponseWriter, r *http.Request) (*time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return nil, true
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		writeBadRequest(w, "bad_date", "date must be YYYY-MM-DD")
		return nil, false
	}
	return &date, true
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "bad_json", err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeBadRequest(w, "validation", err.Error())
		return false
	}
	return true
}
