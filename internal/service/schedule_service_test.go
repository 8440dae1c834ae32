package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type slotStoreStub struct {
	slots    []model.Slot
	nextID   int64
	listErr  error
	deleted  []int64
	batchLen int
}

func (s *slotStoreStub) Create(ctx context.Context, slot *model.Slot) error {
	s.nextID++
	slot.ID = s.nextID
	slot.CreatedAt = time.Now()
	s.slots = append(s.slots, *slot)
	return nil
}

func (s *slotStoreStub) CreateBatch(ctx context.Context, slots []*model.Slot) error {
	s.batchLen = len(slots)
	for _, slot := range slots {
		if err := s.Create(ctx, slot); err != nil {
			return err
		}
	}
	return nil
}

func (s *slotStoreStub) ListForContext(ctx context.Context, schoolID, classroomID int64, day model.Day) ([]model.Slot, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.Slot
	for _, slot := range s.slots {
		if slot.SchoolID == schoolID && slot.ClassroomID == classroomID && slot.Day == day {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (s *slotStoreStub) ListByBatchID(ctx context.Context, batchID uuid.UUID) ([]model.Slot, error) {
	var out []model.Slot
	for _, slot := range s.slots {
		if slot.BatchID == batchID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (s *slotStoreStub) Delete(ctx context.Context, schoolID int64, day model.Day, id int64) (bool, error) {
	for i, slot := range s.slots {
		if slot.ID == id && slot.SchoolID == schoolID && slot.Day == day {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			s.deleted = append(s.deleted, id)
			return true, nil
		}
	}
	return false, nil
}

type rotationStoreStub struct {
	setting *model.WeekRotationSetting
}

func (s *rotationStoreStub) Get(ctx context.Context, schoolID int64) (*model.WeekRotationSetting, error) {
	return s.setting, nil
}

func (s *rotationStoreStub) Upsert(ctx context.Context, setting *model.WeekRotationSetting) error {
	setting.UpdatedAt = time.Now()
	s.setting = setting
	return nil
}

type classroomStoreStub struct {
	classrooms []model.Classroom
}

func (s *classroomStoreStub) Create(ctx context.Context, classroom *model.Classroom) error {
	classroom.ID = int64(len(s.classrooms) + 1)
	s.classrooms = append(s.classrooms, *classroom)
	return nil
}

func (s *classroomStoreStub) GetByID(ctx context.Context, schoolID, id int64) (*model.Classroom, error) {
	for _, c := range s.classrooms {
		if c.ID == id && c.SchoolID == schoolID {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *classroomStoreStub) Delete(ctx context.Context, schoolID, id int64) (bool, error) {
	for i, c := range s.classrooms {
		if c.ID == id && c.SchoolID == schoolID {
			s.classrooms = append(s.classrooms[:i], s.classrooms[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *classroomStoreStub) ListBySchool(ctx context.Context, schoolID int64) ([]model.Classroom, error) {
	return s.classrooms, nil
}

type notifierStub struct {
	messages []string
}

func (n *notifierStub) Notify(ctx context.Context, text string) {
	n.messages = append(n.messages, text)
}

func newTestService() (*ScheduleService, *slotStoreStub, *rotationStoreStub, *notifierStub) {
	slots := &slotStoreStub{}
	rotation := &rotationStoreStub{}
	classrooms := &classroomStoreStub{classrooms: []model.Classroom{
		{ID: 1, SchoolID: 7, Name: "Кабинет 1"},
	}}
	notifier := &notifierStub{}

	svc := NewScheduleService(slots, rotation, classrooms, notifier, zap.NewNop())
	return svc, slots, rotation, notifier
}

func testSlot(start, duration int, week model.Week) *model.Slot {
	return &model.Slot{
		SchoolID:        7,
		ClassroomID:     1,
		Day:             model.DayTuesday,
		StartMinutes:    start,
		DurationMinutes: duration,
		Week:            week,
		Kind:            model.SlotKindTheory,
		Label:           "Иванов",
	}
}

func TestCreateSlot(t *testing.T) {
	svc, slots, _, notifier := newTestService()
	ctx := context.Background()

	err := svc.CreateSlot(ctx, 7, testSlot(540, 60, model.WeekEvery))
	require.NoError(t, err)
	assert.Len(t, slots.slots, 1)
	assert.NotZero(t, slots.slots[0].ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", slots.slots[0].BatchID.String())
	assert.Len(t, notifier.messages, 1)
}

func TestCreateSlotOverlapRejected(t *testing.T) {
	svc, slots, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(540, 60, model.WeekEvery)))

	err := svc.CreateSlot(ctx, 7, testSlot(570, 30, model.WeekEvery))
	assert.ErrorIs(t, err, schedule.ErrOverlap)
	assert.Len(t, slots.slots, 1, "rejected candidate must not be stored")
}

func TestCreateSlotSchoolMismatch(t *testing.T) {
	svc, _, _, _ := newTestService()

	slot := testSlot(540, 60, model.WeekEvery)
	slot.SchoolID = 8

	err := svc.CreateSlot(context.Background(), 7, slot)
	assert.ErrorIs(t, err, schedule.ErrSchoolMismatch)
}

func TestCreateSlotUnknownClassroom(t *testing.T) {
	svc, _, _, _ := newTestService()

	slot := testSlot(540, 60, model.WeekEvery)
	slot.ClassroomID = 99

	err := svc.CreateSlot(context.Background(), 7, slot)
	assert.ErrorIs(t, err, ErrClassroomNotFound)
}

func TestCreateSlotBatch(t *testing.T) {
	svc, slots, _, _ := newTestService()
	ctx := context.Background()

	batch := []*model.Slot{
		testSlot(540, 60, model.WeekEvery),
		testSlot(600, 60, model.WeekEvery), // впритык — допустимо
	}

	err := svc.CreateSlotBatch(ctx, 7, 1, model.DayTuesday, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, slots.batchLen)
	assert.Equal(t, batch[0].BatchID, batch[1].BatchID, "batch shares one batch id")
}

func TestCreateSlotBatchInternalConflict(t *testing.T) {
	svc, slots, _, _ := newTestService()

	batch := []*model.Slot{
		testSlot(540, 60, model.WeekEvery),
		testSlot(570, 60, model.WeekEvery),
	}

	err := svc.CreateSlotBatch(context.Background(), 7, 1, model.DayTuesday, batch)
	assert.ErrorIs(t, err, schedule.ErrOverlap)
	assert.Empty(t, slots.slots, "batch is all-or-nothing")
}

func TestDeleteSlotBatch(t *testing.T) {
	svc, slots, _, _ := newTestService()
	ctx := context.Background()

	batch := []*model.Slot{
		testSlot(540, 60, model.WeekEvery),
		testSlot(600, 60, model.WeekEvery),
	}
	require.NoError(t, svc.CreateSlotBatch(ctx, 7, 1, model.DayTuesday, batch))
	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(720, 60, model.WeekEvery)))

	require.NoError(t, svc.DeleteSlotBatch(ctx, 7, batch[0].BatchID))
	require.Len(t, slots.slots, 1, "only the batch is removed")
	assert.Equal(t, 720, slots.slots[0].StartMinutes)

	// повторное удаление группы — no-op
	require.NoError(t, svc.DeleteSlotBatch(ctx, 7, batch[0].BatchID))
	assert.Len(t, slots.slots, 1)
}

func TestDeleteSlotIdempotent(t *testing.T) {
	svc, slots, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(540, 60, model.WeekEvery)))
	id := slots.slots[0].ID

	require.NoError(t, svc.DeleteSlot(ctx, 7, model.DayTuesday, id))
	assert.Empty(t, slots.slots)

	// повторное удаление — no-op, не ошибка
	require.NoError(t, svc.DeleteSlot(ctx, 7, model.DayTuesday, id))
}

func TestDayOverview(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(540, 60, model.WeekEvery)))
	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(660, 45, model.WeekA)))

	overview, err := svc.DayOverview(ctx, 7, 1, model.DayTuesday, nil)
	require.NoError(t, err)
	assert.Len(t, overview.Slots, 2)
	assert.Len(t, overview.FreeBusy.Occupied, 2)
	assert.Empty(t, overview.ActiveWeek)

	// разбиение покрывает всё окно: 480..540 свободно, 600..660, 705..1320
	assert.Equal(t, schedule.Interval{Start: 480, End: 540}, overview.FreeBusy.Free[0])
	assert.Equal(t, schedule.Interval{Start: 705, End: 1320}, overview.FreeBusy.Free[2])
}

func TestDayOverviewWithActiveWeek(t *testing.T) {
	svc, _, rotation, _ := newTestService()
	ctx := context.Background()

	rotation.setting = &model.WeekRotationSetting{
		SchoolID:          7,
		ReferenceDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		ReferenceWeekType: model.WeekA,
	}

	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(540, 60, model.WeekEvery)))
	require.NoError(t, svc.CreateSlot(ctx, 7, testSlot(660, 45, model.WeekB)))

	// 2024-01-02 — неделя A, слот недели B не активен
	onDate := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	overview, err := svc.DayOverview(ctx, 7, 1, model.DayTuesday, &onDate)
	require.NoError(t, err)
	assert.Equal(t, model.WeekA, overview.ActiveWeek)
	assert.Len(t, overview.Slots, 1)
	assert.Len(t, overview.FreeBusy.Occupied, 1)
}

func TestDayOverviewRotationMissing(t *testing.T) {
	svc, _, _, _ := newTestService()

	onDate := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.DayOverview(context.Background(), 7, 1, model.DayTuesday, &onDate)
	assert.ErrorIs(t, err, ErrRotationNotConfigured)
}

func TestCurrentWeek(t *testing.T) {
	svc, _, rotation, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CurrentWeek(ctx, 7, time.Now())
	assert.ErrorIs(t, err, ErrRotationNotConfigured)

	_, err = svc.SetWeekRotation(ctx, 7, model.WeekA, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, rotation.setting)

	week, err := svc.CurrentWeek(ctx, 7, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, model.WeekB, week)
}

func TestSetWeekRotationRejectsEvery(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.SetWeekRotation(context.Background(), 7, model.WeekEvery, time.Now())
	assert.Error(t, err)
}

func TestCreateSlotListError(t *testing.T) {
	svc, slots, _, _ := newTestService()
	slots.listErr = errors.New("db down")

	err := svc.CreateSlot(context.Background(), 7, testSlot(540, 60, model.WeekEvery))
	assert.Error(t, err)
	assert.Empty(t, slots.slots)
}
