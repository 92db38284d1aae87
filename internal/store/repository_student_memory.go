// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
)

// memoryStudentRepository keeps records in a process-local map. It is the
// standard substitute for a live backend in tests and local runs.
type memoryStudentRepository struct {
	mu       sync.RWMutex
	students map[string]models.Student
	newID    func() string
	logger   *logger.Logger
}

// NewMemoryStudentRepository returns an empty in-memory [StudentRepository].
func NewMemoryStudentRepository(logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating in-memory student repository")
	return &memoryStudentRepository{
		students: make(map[string]models.Student),
		newID:    utils.NewID,
		logger:   logger,
	}
}

func (m *memoryStudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nationalIDTaken(student.NationalID(), "") {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	stored, err := withID(student, m.newID())
	if err != nil {
		return models.Student{}, models.NewStoreError(opCreate, err)
	}
	m.students[stored.ID()] = stored

	logger.FromContext(ctx).Debug().Str("student_id", stored.ID()).Msg("student stored in memory")

	return stored, nil
}

func (m *memoryStudentRepository) GetByID(_ context.Context, id string) (models.Student, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.students[id]
	return s, ok, nil
}

func (m *memoryStudentRepository) GetByNationalID(_ context.Context, nationalID string) (models.Student, bool, error) {
	nationalID = models.NormalizeNationalID(nationalID)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.NationalID() == nationalID {
			return s, true, nil
		}
	}
	return models.Student{}, false, nil
}

func (m *memoryStudentRepository) List(_ context.Context) ([]models.Student, error) {
	m.mu.RLock()
	students := make([]models.Student, 0, len(m.students))
	for _, s := range m.students {
		students = append(students, s)
	}
	m.mu.RUnlock()

	models.SortStudents(students)
	return students, nil
}

func (m *memoryStudentRepository) Update(_ context.Context, student models.Student) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[student.ID()]; !ok {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}
	if m.nationalIDTaken(student.NationalID(), student.ID()) {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	m.students[student.ID()] = student
	return student, nil
}

func (m *memoryStudentRepository) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return false, nil
	}
	delete(m.students, id)
	return true, nil
}

func (m *memoryStudentRepository) NationalIDExists(_ context.Context, nationalID, excludeID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.nationalIDTaken(models.NormalizeNationalID(nationalID), excludeID), nil
}

// nationalIDTaken must be called with mu held.
func (m *memoryStudentRepository) nationalIDTaken(nationalID, excludeID string) bool {
	for id, s := range m.students {
		if id != excludeID && s.NationalID() == nationalID {
			return true
		}
	}
	return false
}
