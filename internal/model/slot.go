package model

import (
	"time"

	"github.com/google/uuid"
)

// Day — учебный день недели. Воскресенье в расписании не используется.
type Day string

const (
	DayMonday    Day = "mon"
	DayTuesday   Day = "tue"
	DayWednesday Day = "wed"
	DayThursday  Day = "thu"
	DayFriday    Day = "fri"
	DaySaturday  Day = "sat"
)

// Days — все учебные дни в порядке недели
var Days = []Day{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday}

// ParseDay разбирает день недели из строки
func ParseDay(s string) (Day, bool) {
	for _, d := range Days {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Week — неделя чередования, на которой повторяется слот
type Week string

const (
	WeekEvery Week = "every" // слот повторяется каждую неделю
	WeekA     Week = "A"
	WeekB     Week = "B"
)

// Opposite возвращает противоположную неделю чередования.
// Для WeekEvery возвращает WeekEvery.
func (w Week) Opposite() Week {
	switch w {
	case WeekA:
		return WeekB
	case WeekB:
		return WeekA
	}
	return w
}

type SlotKind string

const (
	SlotKindTheory     SlotKind = "theory"     // групповое теоретическое занятие
	SlotKindIndividual SlotKind = "individual" // индивидуальный урок
)

// Slot представляет одно занятие кабинета в недельном расписании
type Slot struct {
	ID              int64     `json:"id"`
	SchoolID        int64     `json:"school_id"`
	ClassroomID     int64     `json:"classroom_id"`
	Day             Day       `json:"day"`
	StartMinutes    int       `json:"start_minutes"`    // минуты с полуночи
	DurationMinutes int       `json:"duration_minutes"` // длительность в минутах
	Week            Week      `json:"week"`
	Kind            SlotKind  `json:"kind"`
	Label           string    `json:"label"`    // ментор / программа, свободный текст
	BatchID         uuid.UUID `json:"batch_id"` // идентификатор группы слотов, созданных одним действием
	CreatedAt       time.Time `json:"created_at"`
}

// EndMinutes возвращает минуту окончания слота
func (s Slot) EndMinutes() int {
	return s.StartMinutes + s.DurationMinutes
}
