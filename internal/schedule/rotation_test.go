package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/school_scheduler/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentWeekType(t *testing.T) {
	// якорь: понедельник 2024-01-01 — неделя A
	setting := model.WeekRotationSetting{
		SchoolID:          1,
		ReferenceDate:     date(2024, time.January, 1),
		ReferenceWeekType: model.WeekA,
	}

	cases := []struct {
		name string
		on   time.Time
		want model.Week
	}{
		{"reference date itself", date(2024, time.January, 1), model.WeekA},
		{"middle of reference week", date(2024, time.January, 4), model.WeekA},
		{"next week", date(2024, time.January, 8), model.WeekB},
		{"two weeks after", date(2024, time.January, 15), model.WeekA},
		{"week before reference", date(2023, time.December, 25), model.WeekB},
		{"two weeks before", date(2023, time.December, 18), model.WeekA},
		{"day before reference", date(2023, time.December, 31), model.WeekB},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentWeekType(tc.on, setting); got != tc.want {
				t.Fatalf("CurrentWeekType(%s) = %s, want %s", tc.on.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestCurrentWeekTypeBReference(t *testing.T) {
	setting := model.WeekRotationSetting{
		SchoolID:          1,
		ReferenceDate:     date(2024, time.January, 1),
		ReferenceWeekType: model.WeekB,
	}

	if got := CurrentWeekType(date(2024, time.January, 1), setting); got != model.WeekB {
		t.Fatalf("on reference: got %s, want B", got)
	}
	if got := CurrentWeekType(date(2024, time.January, 8), setting); got != model.WeekA {
		t.Fatalf("week after: got %s, want A", got)
	}
}

// Чередование не должно зависеть от времени суток якоря и запроса
func TestCurrentWeekTypeIgnoresClock(t *testing.T) {
	setting := model.WeekRotationSetting{
		ReferenceDate:     time.Date(2024, time.January, 1, 23, 30, 0, 0, time.UTC),
		ReferenceWeekType: model.WeekA,
	}

	on := time.Date(2024, time.January, 8, 0, 5, 0, 0, time.UTC)
	if got := CurrentWeekType(on, setting); got != model.WeekB {
		t.Fatalf("got %s, want B", got)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 7, 0},
		{6, 7, 0},
		{7, 7, 1},
		{13, 7, 1},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
	}

	for _, tc := range cases {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
