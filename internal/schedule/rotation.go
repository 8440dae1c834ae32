package schedule

import (
	"time"

	"github.com/Freeeeeet/school_scheduler/internal/model"
)

// CurrentWeekType вычисляет активную неделю чередования (A или B) на дату.
// Чётное число полных недель от якорной даты — неделя якоря, нечётное —
// противоположная. Деление берётся с округлением вниз, поэтому даты ДО
// якоря чередуются так же корректно, как и после.
func CurrentWeekType(date time.Time, setting model.WeekRotationSetting) model.Week {
	days := wholeDaysBetween(setting.ReferenceDate, date)
	weeks := floorDiv(days, 7)

	if weeks%2 == 0 {
		return setting.ReferenceWeekType
	}
	return setting.ReferenceWeekType.Opposite()
}

// wholeDaysBetween считает полные календарные дни от from до to.
// Результат отрицательный, если to раньше from.
func wholeDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay) / (24 * time.Hour))
}

// floorDiv — целочисленное деление с округлением к минус бесконечности
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
