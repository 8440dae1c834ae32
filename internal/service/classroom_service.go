package service

import (
	"context"
	"strings"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"go.uber.org/zap"
)

type ClassroomService struct {
	classroomRepo ClassroomStore
	logger        *zap.Logger
}

func NewClassroomService(classroomRepo ClassroomStore, logger *zap.Logger) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		logger:        logger,
	}
}

// CreateClassroom создаёт кабинет школы
func (s *ClassroomService) CreateClassroom(ctx context.Context, schoolID int64, name string) (*model.Classroom, error) {
	classroom := &model.Classroom{
		SchoolID: schoolID,
		Name:     strings.TrimSpace(name),
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, err
	}

	s.logger.Info("Classroom created",
		zap.Int64("classroom_id", classroom.ID),
		zap.Int64("school_id", schoolID),
		zap.String("name", classroom.Name))

	return classroom, nil
}

// ListClassrooms получает все кабинеты школы
func (s *ClassroomService) ListClassrooms(ctx context.Context, schoolID int64) ([]model.Classroom, error) {
	return s.classroomRepo.ListBySchool(ctx, schoolID)
}

// DeleteClassroom удаляет кабинет школы; отсутствие кабинета не ошибка
func (s *ClassroomService) DeleteClassroom(ctx context.Context, schoolID, classroomID int64) error {
	deleted, err := s.classroomRepo.Delete(ctx, schoolID, classroomID)
	if err != nil {
		return err
	}

	if deleted {
		s.logger.Info("Classroom deleted",
			zap.Int64("classroom_id", classroomID),
			zap.Int64("school_id", schoolID))
	}

	return nil
}
