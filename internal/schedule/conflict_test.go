package schedule

import (
	"errors"
	"testing"

	"github.com/Freeeeeet/school_scheduler/internal/model"
)

func candidate(start, duration int, week model.Week) model.Slot {
	return model.Slot{
		SchoolID:        1,
		ClassroomID:     1,
		Day:             model.DayMonday,
		StartMinutes:    start,
		DurationMinutes: duration,
		Week:            week,
		Kind:            model.SlotKindTheory,
	}
}

func TestValidate(t *testing.T) {
	t.Run("ok without neighbours", func(t *testing.T) {
		if err := Validate(candidate(540, 45, model.WeekEvery), nil, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duration too short", func(t *testing.T) {
		err := Validate(candidate(540, 14, model.WeekEvery), nil, 1)
		if !errors.Is(err, ErrDurationOutOfRange) {
			t.Fatalf("want ErrDurationOutOfRange, got %v", err)
		}
	})

	t.Run("duration too long", func(t *testing.T) {
		err := Validate(candidate(540, 181, model.WeekEvery), nil, 1)
		if !errors.Is(err, ErrDurationOutOfRange) {
			t.Fatalf("want ErrDurationOutOfRange, got %v", err)
		}
	})

	t.Run("start before window", func(t *testing.T) {
		err := Validate(candidate(479, 45, model.WeekEvery), nil, 1)
		if !errors.Is(err, ErrTimeOutOfRange) {
			t.Fatalf("want ErrTimeOutOfRange, got %v", err)
		}
	})

	t.Run("start at window end", func(t *testing.T) {
		err := Validate(candidate(1320, 45, model.WeekEvery), nil, 1)
		if !errors.Is(err, ErrTimeOutOfRange) {
			t.Fatalf("want ErrTimeOutOfRange, got %v", err)
		}
	})

	// Граница окна проверяется по старту: 21:50 + 180 минут проходит,
	// хотя занятие кончается после полуночи
	t.Run("late start long duration allowed", func(t *testing.T) {
		if err := Validate(candidate(1310, 180, model.WeekEvery), nil, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("school mismatch", func(t *testing.T) {
		err := Validate(candidate(540, 45, model.WeekEvery), nil, 2)
		if !errors.Is(err, ErrSchoolMismatch) {
			t.Fatalf("want ErrSchoolMismatch, got %v", err)
		}
	})

	t.Run("overlap rejected", func(t *testing.T) {
		existing := []model.Slot{candidate(500, 45, model.WeekEvery)}
		err := Validate(candidate(520, 40, model.WeekEvery), existing, 1)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("want ErrOverlap, got %v", err)
		}
	})

	t.Run("containment rejected", func(t *testing.T) {
		existing := []model.Slot{candidate(500, 120, model.WeekEvery)}
		err := Validate(candidate(530, 30, model.WeekEvery), existing, 1)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("want ErrOverlap, got %v", err)
		}
	})

	// Занятия впритык разрешены в любом порядке добавления
	t.Run("touching boundary is not an overlap", func(t *testing.T) {
		first := candidate(540, 60, model.WeekEvery)  // [540, 600)
		second := candidate(600, 60, model.WeekEvery) // [600, 660)

		if err := Validate(second, []model.Slot{first}, 1); err != nil {
			t.Fatalf("second after first: %v", err)
		}
		if err := Validate(first, []model.Slot{second}, 1); err != nil {
			t.Fatalf("first after second: %v", err)
		}
	})

	t.Run("A and B weeks are independent", func(t *testing.T) {
		existing := []model.Slot{candidate(600, 45, model.WeekA)}
		if err := Validate(candidate(600, 45, model.WeekB), existing, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("every conflicts with A", func(t *testing.T) {
		existing := []model.Slot{candidate(600, 45, model.WeekA)}
		err := Validate(candidate(600, 45, model.WeekEvery), existing, 1)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("want ErrOverlap, got %v", err)
		}
	})

	t.Run("A conflicts with every", func(t *testing.T) {
		existing := []model.Slot{candidate(600, 45, model.WeekEvery)}
		err := Validate(candidate(600, 45, model.WeekA), existing, 1)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("want ErrOverlap, got %v", err)
		}
	})

	t.Run("B conflicts with B", func(t *testing.T) {
		existing := []model.Slot{candidate(600, 45, model.WeekB)}
		err := Validate(candidate(620, 45, model.WeekB), existing, 1)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("want ErrOverlap, got %v", err)
		}
	})

	t.Run("other classroom does not conflict", func(t *testing.T) {
		other := candidate(600, 45, model.WeekEvery)
		other.ClassroomID = 2
		if err := Validate(candidate(600, 45, model.WeekEvery), []model.Slot{other}, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other day does not conflict", func(t *testing.T) {
		other := candidate(600, 45, model.WeekEvery)
		other.Day = model.DayTuesday
		if err := Validate(candidate(600, 45, model.WeekEvery), []model.Slot{other}, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	// Порядок проверок: длительность раньше окна, окно раньше школы
	t.Run("fail fast order", func(t *testing.T) {
		bad := candidate(400, 10, model.WeekEvery)
		bad.SchoolID = 99
		err := Validate(bad, nil, 1)
		if !errors.Is(err, ErrDurationOutOfRange) {
			t.Fatalf("want ErrDurationOutOfRange first, got %v", err)
		}

		bad.DurationMinutes = 60
		err = Validate(bad, nil, 1)
		if !errors.Is(err, ErrTimeOutOfRange) {
			t.Fatalf("want ErrTimeOutOfRange second, got %v", err)
		}
	})
}
