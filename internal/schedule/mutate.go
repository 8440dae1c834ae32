package schedule

import (
	"github.com/Freeeeeet/school_scheduler/internal/model"
)

// AddSlot валидирует кандидата и возвращает новую коллекцию слотов с ним.
// При ошибке валидации исходная коллекция не меняется и возвращается ошибка
// как есть; частичных мутаций нет.
func AddSlot(candidate model.Slot, existing []model.Slot, schoolScope int64) ([]model.Slot, error) {
	if err := Validate(candidate, existing, schoolScope); err != nil {
		return nil, err
	}

	out := make([]model.Slot, 0, len(existing)+1)
	out = append(out, existing...)
	out = append(out, candidate)
	return out, nil
}

// RemoveSlot возвращает новую коллекцию без слота с указанным ID.
// Если такого слота нет — возвращает вход без изменений: повторное удаление
// уже удалённого не ошибка на этом уровне.
func RemoveSlot(slots []model.Slot, targetID int64) []model.Slot {
	idx := -1
	for i, slot := range slots {
		if slot.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return slots
	}

	out := make([]model.Slot, 0, len(slots)-1)
	out = append(out, slots[:idx]...)
	out = append(out, slots[idx+1:]...)
	return out
}
