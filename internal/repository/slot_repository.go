package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Create создаёт новый слот
func (r *SlotRepository) Create(ctx context.Context, slot *model.Slot) error {
	query := `
		INSERT INTO schedule_slots (school_id, classroom_id, day, start_minutes, duration_minutes, week, kind, label, batch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		slot.SchoolID,
		slot.ClassroomID,
		slot.Day,
		slot.StartMinutes,
		slot.DurationMinutes,
		slot.Week,
		slot.Kind,
		slot.Label,
		slot.BatchID,
	).Scan(&slot.ID, &slot.CreatedAt)

	if err != nil {
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

// CreateBatch сохраняет группу слотов одной транзакцией.
// Слоты других дней и кабинетов не затрагиваются (merge-семантика).
func (r *SlotRepository) CreateBatch(ctx context.Context, slots []*model.Slot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO schedule_slots (school_id, classroom_id, day, start_minutes, duration_minutes, week, kind, label, batch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	for _, slot := range slots {
		err := tx.QueryRow(
			ctx, query,
			slot.SchoolID,
			slot.ClassroomID,
			slot.Day,
			slot.StartMinutes,
			slot.DurationMinutes,
			slot.Week,
			slot.Kind,
			slot.Label,
			slot.BatchID,
		).Scan(&slot.ID, &slot.CreatedAt)
		if err != nil {
			return fmt.Errorf("create slot in batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch tx: %w", err)
	}

	return nil
}

// ListForContext получает все слоты кабинета на день
func (r *SlotRepository) ListForContext(ctx context.Context, schoolID, classroomID int64, day model.Day) ([]model.Slot, error) {
	query := `
		SELECT id, school_id, classroom_id, day, start_minutes, duration_minutes, week, kind, label, batch_id, created_at
		FROM schedule_slots
		WHERE school_id = $1
		  AND classroom_id = $2
		  AND day = $3
		ORDER BY start_minutes
	`

	rows, err := r.pool.Query(ctx, query, schoolID, classroomID, day)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByBatchID получает все слоты, созданные одним действием
func (r *SlotRepository) ListByBatchID(ctx context.Context, batchID uuid.UUID) ([]model.Slot, error) {
	query := `
		SELECT id, school_id, classroom_id, day, start_minutes, duration_minutes, week, kind, label, batch_id, created_at
		FROM schedule_slots
		WHERE batch_id = $1
		ORDER BY day, start_minutes
	`

	rows, err := r.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list slots by batch: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Delete удаляет слот в пределах (школа, день). Возвращает false, если
// слота уже нет — для вызывающего это не ошибка.
func (r *SlotRepository) Delete(ctx context.Context, schoolID int64, day model.Day, id int64) (bool, error) {
	query := `
		DELETE FROM schedule_slots
		WHERE id = $1 AND school_id = $2 AND day = $3
	`

	result, err := r.pool.Exec(ctx, query, id, schoolID, day)
	if err != nil {
		return false, fmt.Errorf("delete slot: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanSlots(rows pgx.Rows) ([]model.Slot, error) {
	var slots []model.Slot
	for rows.Next() {
		var slot model.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.SchoolID,
			&slot.ClassroomID,
			&slot.Day,
			&slot.StartMinutes,
			&slot.DurationMinutes,
			&slot.Week,
			&slot.Kind,
			&slot.Label,
			&slot.BatchID,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
