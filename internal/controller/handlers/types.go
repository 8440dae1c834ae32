package handlers

import (
	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/schedule"
	"github.com/Freeeeeet/school_scheduler/internal/service"
	"github.com/Freeeeeet/school_scheduler/internal/timeutil"
)

// SlotRequest — кандидат слота с проводного формата.
// week отсутствует или null — слот повторяется каждую неделю.
type SlotRequest struct {
	SchoolID        int64   `json:"schoolId" validate:"required"`
	StartTime       string  `json:"startTime" validate:"required"`
	DurationMinutes int     `json:"durationMinutes" validate:"required"`
	Week            *string `json:"week" validate:"omitempty,oneof=A B"`
	Kind            string  `json:"kind" validate:"required,oneof=theory individual"`
	Label           string  `json:"label"`
}

// ToModel переводит запрос в доменный слот; день и кабинет берутся из URL
func (r SlotRequest) ToModel(classroomID int64, day model.Day) (model.Slot, error) {
	start, err := timeutil.ToMinutes(r.StartTime)
	if err != nil {
		return model.Slot{}, err
	}

	week := model.WeekEvery
	if r.Week != nil {
		week = model.Week(*r.Week)
	}

	return model.Slot{
		SchoolID:        r.SchoolID,
		ClassroomID:     classroomID,
		Day:             day,
		StartMinutes:    start,
		DurationMinutes: r.DurationMinutes,
		Week:            week,
		Kind:            model.SlotKind(r.Kind),
		Label:           r.Label,
	}, nil
}

type SlotBatchRequest struct {
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

type SlotResponse struct {
	ID              int64   `json:"id"`
	SchoolID        int64   `json:"schoolId"`
	ClassroomID     int64   `json:"classroomId"`
	Day             string  `json:"day"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Week            *string `json:"week"` // null — каждую неделю
	Kind            string  `json:"kind"`
	Label           string  `json:"label"`
	BatchID         string  `json:"batchId"`
}

func newSlotResponse(slot model.Slot) SlotResponse {
	var week *string
	if slot.Week != model.WeekEvery {
		w := string(slot.Week)
		week = &w
	}

	return SlotResponse{
		ID:              slot.ID,
		SchoolID:        slot.SchoolID,
		ClassroomID:     slot.ClassroomID,
		Day:             string(slot.Day),
		StartTime:       timeutil.ToTimeString(slot.StartMinutes),
		DurationMinutes: slot.DurationMinutes,
		Week:            week,
		Kind:            string(slot.Kind),
		Label:           slot.Label,
		BatchID:         slot.BatchID.String(),
	}
}

type IntervalResponse struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func newIntervalResponses(intervals []schedule.Interval) []IntervalResponse {
	out := make([]IntervalResponse, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, IntervalResponse{
			Start:     iv.Start,
			End:       iv.End,
			StartTime: timeutil.ToTimeString(iv.Start),
			EndTime:   timeutil.ToTimeString(iv.End),
		})
	}
	return out
}

type DayScheduleResponse struct {
	Slots      []SlotResponse     `json:"slots"`
	Occupied   []IntervalResponse `json:"occupied"`
	Free       []IntervalResponse `json:"free"`
	ActiveWeek *string            `json:"activeWeek,omitempty"`
}

func newDayScheduleResponse(overview *service.DayOverview) DayScheduleResponse {
	slots := make([]SlotResponse, 0, len(overview.Slots))
	for _, slot := range overview.Slots {
		slots = append(slots, newSlotResponse(slot))
	}

	resp := DayScheduleResponse{
		Slots:    slots,
		Occupied: newIntervalResponses(overview.FreeBusy.Occupied),
		Free:     newIntervalResponses(overview.FreeBusy.Free),
	}

	if overview.ActiveWeek != "" {
		w := string(overview.ActiveWeek)
		resp.ActiveWeek = &w
	}

	return resp
}

type WeekRotationRequest struct {
	WeekType      string `json:"weekType" validate:"required,oneof=A B"`
	ReferenceDate string `json:"referenceDate" validate:"required"` // ISO-дата
}

type WeekRotationResponse struct {
	WeekType      string `json:"weekType"`
	ReferenceDate string `json:"referenceDate"`
}

type CurrentWeekResponse struct {
	Date     string `json:"date"`
	WeekType string `json:"weekType"`
}

type ClassroomRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type ClassroomResponse struct {
	ID       int64  `json:"id"`
	SchoolID int64  `json:"schoolId"`
	Name     string `json:"name"`
}

func newClassroomResponse(classroom model.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:       classroom.ID,
		SchoolID: classroom.SchoolID,
		Name:     classroom.Name,
	}
}
