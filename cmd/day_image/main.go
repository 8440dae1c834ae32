package main

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/school_scheduler/internal/controller/render"
	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/schedule"
)

// Смоук-инструмент рендера: рисует пример дня кабинета в day_schedule.png
func main() {
	slots := []model.Slot{
		{
			ID:              1,
			SchoolID:        1,
			ClassroomID:     1,
			Day:             model.DayMonday,
			StartMinutes:    480, // 08:00
			DurationMinutes: 90,
			Week:            model.WeekEvery,
			Kind:            model.SlotKindTheory,
			Label:           "ПДД, группа 14",
		},
		{
			ID:              2,
			SchoolID:        1,
			ClassroomID:     1,
			Day:             model.DayMonday,
			StartMinutes:    600, // 10:00
			DurationMinutes: 45,
			Week:            model.WeekA,
			Kind:            model.SlotKindIndividual,
			Label:           "Иванов",
		},
		{
			ID:              3,
			SchoolID:        1,
			ClassroomID:     1,
			Day:             model.DayMonday,
			StartMinutes:    645, // 10:45, впритык
			DurationMinutes: 45,
			Week:            model.WeekEvery,
			Kind:            model.SlotKindIndividual,
			Label:           "Петров",
		},
		{
			ID:              4,
			SchoolID:        1,
			ClassroomID:     1,
			Day:             model.DayMonday,
			StartMinutes:    1140, // 19:00
			DurationMinutes: 120,
			Week:            model.WeekB,
			Kind:            model.SlotKindTheory,
			Label:           "Теория, вечерняя группа",
		},
	}

	fb := schedule.ComputeFreeBusy(slots, schedule.DayStartMinutes, schedule.DayEndMinutes)

	png, err := render.DayImage(model.DayMonday, slots, fb, model.WeekA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("day_schedule.png", png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ day_schedule.png written")
}
