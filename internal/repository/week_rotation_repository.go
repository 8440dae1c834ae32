package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WeekRotationRepository хранит привязку чередования недель A/B по школам
type WeekRotationRepository struct {
	*base.Repository
}

func NewWeekRotationRepository(pool *pgxpool.Pool) *WeekRotationRepository {
	return &WeekRotationRepository{Repository: base.NewRepository(pool)}
}

// Get получает настройку чередования школы. Возвращает nil, если школа
// ещё не привязывала недели.
func (r *WeekRotationRepository) Get(ctx context.Context, schoolID int64) (*model.WeekRotationSetting, error) {
	query := `
		SELECT school_id, reference_date, reference_week_type, updated_at
		FROM week_rotation_settings
		WHERE school_id = $1
	`

	var setting model.WeekRotationSetting
	err := r.QueryRow(ctx, query, schoolID).Scan(
		&setting.SchoolID,
		&setting.ReferenceDate,
		&setting.ReferenceWeekType,
		&setting.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get week rotation setting: %w", err)
	}

	return &setting, nil
}

// Upsert записывает настройку чередования школы, перезаписывая прежний якорь
func (r *WeekRotationRepository) Upsert(ctx context.Context, setting *model.WeekRotationSetting) error {
	query := `
		INSERT INTO week_rotation_settings (school_id, reference_date, reference_week_type, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (school_id) DO UPDATE
		SET reference_date = EXCLUDED.reference_date,
		    reference_week_type = EXCLUDED.reference_week_type,
		    updated_at = now()
		RETURNING updated_at
	`

	err := r.QueryRow(ctx, query, setting.SchoolID, setting.ReferenceDate, setting.ReferenceWeekType).
		Scan(&setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert week rotation setting: %w", err)
	}

	return nil
}
