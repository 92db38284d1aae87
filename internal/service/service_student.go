// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/store"
	"github.com/MKhiriev/go-student-registry/models"
)

const (
	opCreate = "create"
	opRead   = "read"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

// studentService sequences validation, existence checks and repository calls
// for each use case.
type studentService struct {
	repository store.StudentRepository
	logger     *logger.Logger
}

// NewStudentService constructs a [StudentService] over repository.
func NewStudentService(repository store.StudentRepository, logger *logger.Logger) StudentService {
	logger.Debug().Msg("creating student service")
	return &studentService{
		repository: repository,
		logger:     logger,
	}
}

// CreateStudent validates the request and stores the resulting record.
func (s *studentService) CreateStudent(ctx context.Context, request models.StudentRequest) (models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := models.NewStudent(request.GivenName, request.FamilyName, request.NationalID)
	if err != nil {
		log.Debug().Err(err).Msg("student request rejected")
		return models.Student{}, err
	}

	created, err := s.repository.Create(ctx, student)
	if err != nil {
		log.Err(err).Str("func", "studentService.CreateStudent").Msg("student creation ended with error")
		return models.Student{}, domainError(opCreate, err)
	}

	log.Info().Str("student_id", created.ID()).Msg("student created")
	return created, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (models.Student, error) {
	student, found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "studentService.GetStudent").Msg("student lookup failed")
		return models.Student{}, domainError(opRead, err)
	}
	if !found {
		return models.Student{}, models.NewNotFoundError(id)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.repository.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "studentService.ListStudents").Msg("student listing failed")
		return nil, domainError(opList, err)
	}
	return students, nil
}

// UpdateStudent replaces the fields of an existing record. A missing record
// is reported before the request is validated.
func (s *studentService) UpdateStudent(ctx context.Context, id string, request models.StudentRequest) (models.Student, error) {
	log := logger.FromContext(ctx)

	existing, err := s.GetStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	revised, err := existing.Revise(request.GivenName, request.FamilyName, request.NationalID)
	if err != nil {
		log.Debug().Err(err).Str("student_id", id).Msg("student update rejected")
		return models.Student{}, err
	}

	updated, err := s.repository.Update(ctx, revised)
	if err != nil {
		log.Err(err).Str("func", "studentService.UpdateStudent").Str("student_id", id).Msg("student update ended with error")
		return models.Student{}, domainError(opUpdate, err)
	}

	log.Info().Str("student_id", id).Msg("student updated")
	return updated, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "studentService.DeleteStudent").Str("student_id", id).Msg("student deletion ended with error")
		return domainError(opDelete, err)
	}
	// removed concurrently since the lookup
	if !deleted {
		return models.NewNotFoundError(id)
	}

	log.Info().Str("student_id", id).Msg("student deleted")
	return nil
}

func (s *studentService) FindByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error) {
	student, found, err := s.repository.GetByNationalID(ctx, nationalID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "studentService.FindByNationalID").Msg("student lookup failed")
		return models.Student{}, false, domainError(opRead, err)
	}
	return student, found, nil
}

// domainError passes taxonomy errors through and wraps anything else as a
// store failure of op.
func domainError(op string, err error) error {
	if models.IsDomainError(err) {
		return err
	}
	return models.NewStoreError(op, err)
}
