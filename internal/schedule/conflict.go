package schedule

import (
	"errors"

	"github.com/Freeeeeet/school_scheduler/internal/model"
)

// Допустимая длительность слота в минутах
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 180
)

// Закрытый набор ошибок валидации кандидата. Все они локальные и
// исправимые: пользователь правит слот и пробует снова.
var (
	ErrDurationOutOfRange = errors.New("slot duration out of range")
	ErrTimeOutOfRange     = errors.New("slot start time outside working window")
	ErrSchoolMismatch     = errors.New("slot belongs to another school")
	ErrOverlap            = errors.New("slot overlaps an existing slot")
)

// Validate проверяет кандидата против уже размещённых слотов.
// Порядок проверок фиксирован: длительность, окно времени, школа, пересечение;
// возвращается первая нарушенная.
//
// Верхняя граница окна проверяется по времени НАЧАЛА слота: старт 21:50 с
// длительностью 180 минут проходит проверку, хотя занятие кончается за
// полночь. Так ведёт себя продукт; менять без согласования нельзя.
func Validate(candidate model.Slot, existing []model.Slot, schoolScope int64) error {
	if candidate.DurationMinutes < MinDurationMinutes || candidate.DurationMinutes > MaxDurationMinutes {
		return ErrDurationOutOfRange
	}

	if candidate.StartMinutes < DayStartMinutes || candidate.StartMinutes >= DayEndMinutes {
		return ErrTimeOutOfRange
	}

	if candidate.SchoolID != schoolScope {
		return ErrSchoolMismatch
	}

	for _, slot := range existing {
		if slot.ClassroomID != candidate.ClassroomID ||
			slot.Day != candidate.Day ||
			slot.SchoolID != candidate.SchoolID {
			continue
		}
		if !weeksConflict(candidate.Week, slot.Week) {
			continue
		}
		if timesOverlap(candidate.StartMinutes, candidate.EndMinutes(), slot.StartMinutes, slot.EndMinutes()) {
			return ErrOverlap
		}
	}

	return nil
}

// weeksConflict решает, делят ли два слота недели чередования.
// Не конфликтует только пара разных конкретных недель (A против B);
// WeekEvery конфликтует с чем угодно.
func weeksConflict(a, b model.Week) bool {
	if a == model.WeekEvery || b == model.WeekEvery {
		return true
	}
	return a == b
}

// timesOverlap проверяет пересечение полуоткрытых интервалов [start, end).
// Соприкасающиеся границы пересечением не считаются: занятия впритык разрешены.
func timesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}
