package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassroomRepository struct {
	*base.Repository
}

func NewClassroomRepository(pool *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{Repository: base.NewRepository(pool)}
}

// Create создаёт новый кабинет
func (r *ClassroomRepository) Create(ctx context.Context, classroom *model.Classroom) error {
	query := `
		INSERT INTO classrooms (school_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, classroom.SchoolID, classroom.Name).
		Scan(&classroom.ID, &classroom.CreatedAt)
	if err != nil {
		return fmt.Errorf("create classroom: %w", err)
	}

	return nil
}

// GetByID получает кабинет по ID в пределах школы
func (r *ClassroomRepository) GetByID(ctx context.Context, schoolID, id int64) (*model.Classroom, error) {
	query := `
		SELECT id, school_id, name, created_at
		FROM classrooms
		WHERE id = $1 AND school_id = $2
	`

	var classroom model.Classroom
	err := r.QueryRow(ctx, query, id, schoolID).Scan(
		&classroom.ID,
		&classroom.SchoolID,
		&classroom.Name,
		&classroom.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get classroom by id: %w", err)
	}

	return &classroom, nil
}

// Delete удаляет кабинет школы вместе с его слотами (каскад в схеме).
// Возвращает false, если кабинета уже нет.
func (r *ClassroomRepository) Delete(ctx context.Context, schoolID, id int64) (bool, error) {
	query := `
		DELETE FROM classrooms
		WHERE id = $1 AND school_id = $2
	`

	affected, err := r.ExecAffected(ctx, query, id, schoolID)
	if err != nil {
		return false, fmt.Errorf("delete classroom: %w", err)
	}

	return affected > 0, nil
}

// ListBySchool получает все кабинеты школы
func (r *ClassroomRepository) ListBySchool(ctx context.Context, schoolID int64) ([]model.Classroom, error) {
	query := `
		SELECT id, school_id, name, created_at
		FROM classrooms
		WHERE school_id = $1
		ORDER BY name
	`

	rows, err := r.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []model.Classroom
	for rows.Next() {
		var classroom model.Classroom
		err := rows.Scan(&classroom.ID, &classroom.SchoolID, &classroom.Name, &classroom.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan classroom: %w", err)
		}
		classrooms = append(classrooms, classroom)
	}

	return classrooms, nil
}
