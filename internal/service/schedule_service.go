package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/schedule"
	"github.com/Freeeeeet/school_scheduler/internal/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRotationNotConfigured возвращается, когда школа ещё не привязала
// чередование недель A/B
var ErrRotationNotConfigured = errors.New("week rotation is not configured for school")

// ErrClassroomNotFound возвращается, когда кабинет не принадлежит школе
var ErrClassroomNotFound = errors.New("classroom not found")

// Notifier отправляет административные уведомления об изменениях расписания
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// SlotStore — хранилище слотов. Реализуется repository.SlotRepository.
type SlotStore interface {
	Create(ctx context.Context, slot *model.Slot) error
	CreateBatch(ctx context.Context, slots []*model.Slot) error
	ListForContext(ctx context.Context, schoolID, classroomID int64, day model.Day) ([]model.Slot, error)
	ListByBatchID(ctx context.Context, batchID uuid.UUID) ([]model.Slot, error)
	Delete(ctx context.Context, schoolID int64, day model.Day, id int64) (bool, error)
}

// WeekRotationStore — хранилище настроек чередования недель
type WeekRotationStore interface {
	Get(ctx context.Context, schoolID int64) (*model.WeekRotationSetting, error)
	Upsert(ctx context.Context, setting *model.WeekRotationSetting) error
}

// ClassroomStore — хранилище кабинетов
type ClassroomStore interface {
	Create(ctx context.Context, classroom *model.Classroom) error
	GetByID(ctx context.Context, schoolID, id int64) (*model.Classroom, error)
	Delete(ctx context.Context, schoolID, id int64) (bool, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]model.Classroom, error)
}

// DayOverview — слоты кабинета на день вместе с разбиением окна на
// занятые и свободные интервалы
type DayOverview struct {
	Slots      []model.Slot
	FreeBusy   schedule.FreeBusy
	ActiveWeek model.Week // пустая, если обзор не привязан к дате
}

type ScheduleService struct {
	slotRepo      SlotStore
	rotationRepo  WeekRotationStore
	classroomRepo ClassroomStore
	notifier      Notifier
	logger        *zap.Logger

	// Валидация и запись слота должны быть атомарны в пределах ключа
	// (школа, кабинет, день), иначе два администратора могут одновременно
	// пройти валидацию и записать пересекающиеся слоты.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewScheduleService(
	slotRepo SlotStore,
	rotationRepo WeekRotationStore,
	classroomRepo ClassroomStore,
	notifier Notifier,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		slotRepo:      slotRepo,
		rotationRepo:  rotationRepo,
		classroomRepo: classroomRepo,
		notifier:      notifier,
		logger:        logger,
		locks:         make(map[string]*sync.Mutex),
	}
}

func (s *ScheduleService) contextLock(schoolID, classroomID int64, day model.Day) *sync.Mutex {
	key := fmt.Sprintf("%d:%d:%s", schoolID, classroomID, day)

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// CreateSlot валидирует и сохраняет один слот. schoolID — школа из контекста
// запроса; кандидат с чужим school_id отклоняется до проверки пересечений.
func (s *ScheduleService) CreateSlot(ctx context.Context, schoolID int64, slot *model.Slot) error {
	if err := s.checkClassroom(ctx, schoolID, slot.ClassroomID); err != nil {
		return err
	}

	lock := s.contextLock(schoolID, slot.ClassroomID, slot.Day)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.slotRepo.ListForContext(ctx, schoolID, slot.ClassroomID, slot.Day)
	if err != nil {
		return fmt.Errorf("load existing slots: %w", err)
	}

	if _, err := schedule.AddSlot(*slot, existing, schoolID); err != nil {
		s.logger.Info("Slot candidate rejected",
			zap.Int64("school_id", schoolID),
			zap.Int64("classroom_id", slot.ClassroomID),
			zap.String("day", string(slot.Day)),
			zap.Int("start_minutes", slot.StartMinutes),
			zap.Error(err))
		return err
	}

	slot.BatchID = uuid.New()
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return err
	}

	s.logger.Info("Slot created",
		zap.Int64("slot_id", slot.ID),
		zap.Int64("school_id", slot.SchoolID),
		zap.Int64("classroom_id", slot.ClassroomID),
		zap.String("day", string(slot.Day)),
		zap.String("week", string(slot.Week)),
		zap.Int("start_minutes", slot.StartMinutes),
		zap.Int("duration_minutes", slot.DurationMinutes))

	s.notify(ctx, fmt.Sprintf("Новое занятие: кабинет %d, %s %s, %d мин (%s)",
		slot.ClassroomID, slot.Day, timeutil.ToTimeString(slot.StartMinutes),
		slot.DurationMinutes, slot.Week))

	return nil
}

// CreateSlotBatch валидирует и сохраняет группу слотов одного кабинета и дня
// под общим batch_id. Группа принимается или отклоняется целиком.
func (s *ScheduleService) CreateSlotBatch(ctx context.Context, schoolID, classroomID int64, day model.Day, slots []*model.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	if err := s.checkClassroom(ctx, schoolID, classroomID); err != nil {
		return err
	}

	lock := s.contextLock(schoolID, classroomID, day)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.slotRepo.ListForContext(ctx, schoolID, classroomID, day)
	if err != nil {
		return fmt.Errorf("load existing slots: %w", err)
	}

	// Кандидаты проверяются последовательно против уже принятых,
	// чтобы группа не конфликтовала и сама с собой
	collection := existing
	for _, slot := range slots {
		collection, err = schedule.AddSlot(*slot, collection, schoolID)
		if err != nil {
			s.logger.Info("Slot batch rejected",
				zap.Int64("school_id", schoolID),
				zap.Int64("classroom_id", classroomID),
				zap.String("day", string(day)),
				zap.Int("start_minutes", slot.StartMinutes),
				zap.Error(err))
			return err
		}
	}

	batchID := uuid.New()
	for _, slot := range slots {
		slot.BatchID = batchID
	}

	if err := s.slotRepo.CreateBatch(ctx, slots); err != nil {
		return err
	}

	s.logger.Info("Slot batch created",
		zap.String("batch_id", batchID.String()),
		zap.Int64("school_id", schoolID),
		zap.Int64("classroom_id", classroomID),
		zap.String("day", string(day)),
		zap.Int("count", len(slots)))

	return nil
}

// DeleteSlot удаляет слот в пределах (школа, день). Отсутствие слота —
// не ошибка: удаление уже удалённого идемпотентно.
func (s *ScheduleService) DeleteSlot(ctx context.Context, schoolID int64, day model.Day, slotID int64) error {
	deleted, err := s.slotRepo.Delete(ctx, schoolID, day, slotID)
	if err != nil {
		return err
	}

	if !deleted {
		s.logger.Info("Slot already gone",
			zap.Int64("slot_id", slotID),
			zap.Int64("school_id", schoolID),
			zap.String("day", string(day)))
		return nil
	}

	s.logger.Info("Slot deleted",
		zap.Int64("slot_id", slotID),
		zap.Int64("school_id", schoolID),
		zap.String("day", string(day)))

	s.notify(ctx, fmt.Sprintf("Занятие %d удалено (%s)", slotID, day))

	return nil
}

// DeleteSlotBatch удаляет все слоты, созданные одной групповой операцией.
// Чужие школе слоты пропускаются; пустая группа — не ошибка.
func (s *ScheduleService) DeleteSlotBatch(ctx context.Context, schoolID int64, batchID uuid.UUID) error {
	slots, err := s.slotRepo.ListByBatchID(ctx, batchID)
	if err != nil {
		return fmt.Errorf("load batch slots: %w", err)
	}

	removed := 0
	for _, slot := range slots {
		if slot.SchoolID != schoolID {
			continue
		}
		deleted, err := s.slotRepo.Delete(ctx, schoolID, slot.Day, slot.ID)
		if err != nil {
			return err
		}
		if deleted {
			removed++
		}
	}

	s.logger.Info("Slot batch deleted",
		zap.String("batch_id", batchID.String()),
		zap.Int64("school_id", schoolID),
		zap.Int("count", removed))

	if removed > 0 {
		s.notify(ctx, fmt.Sprintf("Группа занятий удалена: %d шт.", removed))
	}

	return nil
}

// DayOverview собирает расписание кабинета на день: слоты и свободные
// интервалы окна 08:00–22:00. Если передана дата, слоты фильтруются по
// активной на эту дату неделе чередования.
func (s *ScheduleService) DayOverview(ctx context.Context, schoolID, classroomID int64, day model.Day, onDate *time.Time) (*DayOverview, error) {
	if err := s.checkClassroom(ctx, schoolID, classroomID); err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListForContext(ctx, schoolID, classroomID, day)
	if err != nil {
		return nil, err
	}

	overview := &DayOverview{Slots: slots}

	if onDate != nil {
		setting, err := s.rotationRepo.Get(ctx, schoolID)
		if err != nil {
			return nil, err
		}
		if setting == nil {
			return nil, ErrRotationNotConfigured
		}

		overview.ActiveWeek = schedule.CurrentWeekType(*onDate, *setting)

		active := make([]model.Slot, 0, len(slots))
		for _, slot := range slots {
			if slot.Week == model.WeekEvery || slot.Week == overview.ActiveWeek {
				active = append(active, slot)
			}
		}
		overview.Slots = active
	}

	overview.FreeBusy = schedule.ComputeFreeBusy(overview.Slots, schedule.DayStartMinutes, schedule.DayEndMinutes)

	return overview, nil
}

// CurrentWeek возвращает активную неделю чередования школы на дату
func (s *ScheduleService) CurrentWeek(ctx context.Context, schoolID int64, date time.Time) (model.Week, error) {
	setting, err := s.rotationRepo.Get(ctx, schoolID)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", ErrRotationNotConfigured
	}

	return schedule.CurrentWeekType(date, *setting), nil
}

// SetWeekRotation перепривязывает чередование недель школы к новому якорю
func (s *ScheduleService) SetWeekRotation(ctx context.Context, schoolID int64, weekType model.Week, referenceDate time.Time) (*model.WeekRotationSetting, error) {
	if weekType != model.WeekA && weekType != model.WeekB {
		return nil, fmt.Errorf("reference week type must be A or B, got %q", weekType)
	}

	setting := &model.WeekRotationSetting{
		SchoolID:          schoolID,
		ReferenceDate:     referenceDate,
		ReferenceWeekType: weekType,
	}

	if err := s.rotationRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info("Week rotation re-anchored",
		zap.Int64("school_id", schoolID),
		zap.String("week_type", string(weekType)),
		zap.Time("reference_date", referenceDate))

	return setting, nil
}

func (s *ScheduleService) checkClassroom(ctx context.Context, schoolID, classroomID int64) error {
	classroom, err := s.classroomRepo.GetByID(ctx, schoolID, classroomID)
	if err != nil {
		return err
	}
	if classroom == nil {
		return ErrClassroomNotFound
	}
	return nil
}

func (s *ScheduleService) notify(ctx context.Context, text string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, text)
}
