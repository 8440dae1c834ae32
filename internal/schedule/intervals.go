package schedule

import (
	"sort"

	"github.com/Freeeeeet/school_scheduler/internal/model"
)

// Рабочее окно кабинета: 08:00–22:00
const (
	DayStartMinutes = 480
	DayEndMinutes   = 1320
)

// Interval — полуоткрытый интервал [Start, End) в минутах с полуночи
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FreeBusy — разбиение рабочего окна дня на занятые и свободные интервалы
type FreeBusy struct {
	Occupied []Interval `json:"occupied"`
	Free     []Interval `json:"free"`
}

// ComputeFreeBusy разбивает окно [dayStart, dayEnd) на занятые и свободные
// интервалы по уже размещённым слотам одного кабинета и дня.
//
// Слоты сортируются по началу, затем курсор идёт слева направо: разрыв до
// начала слота становится свободным интервалом, сам слот — занятым, после
// чего курсор встаёт на конец слота. Пересекающиеся слоты на входе не
// отбраковываются (за их отсутствие отвечает валидация при создании); для
// непересекающегося входа занятые и свободные интервалы в точности покрывают
// окно без разрывов и двойного покрытия.
func ComputeFreeBusy(slots []model.Slot, dayStart, dayEnd int) FreeBusy {
	sorted := make([]model.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartMinutes < sorted[j].StartMinutes
	})

	fb := FreeBusy{
		Occupied: make([]Interval, 0, len(sorted)),
		Free:     make([]Interval, 0, len(sorted)+1),
	}

	cursor := dayStart
	for _, slot := range sorted {
		if cursor < slot.StartMinutes {
			fb.Free = append(fb.Free, Interval{Start: cursor, End: slot.StartMinutes})
		}
		fb.Occupied = append(fb.Occupied, Interval{Start: slot.StartMinutes, End: slot.EndMinutes()})
		cursor = slot.EndMinutes()
	}

	if cursor < dayEnd {
		fb.Free = append(fb.Free, Interval{Start: cursor, End: dayEnd})
	}

	return fb
}
