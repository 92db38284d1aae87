// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-student-registry/models"
)

// Operation names reported by [models.StoreError].
const (
	opCreate = "create"
	opRead   = "read"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

// studentRow is the flat persisted form shared by every backend.
type studentRow struct {
	ID         string    `json:"id,omitempty" bson:"_id"`
	GivenName  string    `json:"nombre" bson:"nombre"`
	FamilyName string    `json:"apellido" bson:"apellido"`
	NationalID string    `json:"dni" bson:"dni"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

func newStudentRow(s models.Student) studentRow {
	return studentRow{
		ID:         s.ID(),
		GivenName:  s.GivenName(),
		FamilyName: s.FamilyName(),
		NationalID: s.NationalID(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

// toModel re-hydrates the row through the validating constructor.
func (r studentRow) toModel() (models.Student, error) {
	s, err := models.NewStudent(r.GivenName, r.FamilyName, r.NationalID,
		models.WithID(r.ID),
		models.WithCreatedAt(r.CreatedAt),
		models.WithUpdatedAt(r.UpdatedAt),
	)
	if err != nil {
		// %v keeps the validation error out of the chain: the record is
		// corrupt, the caller's input is not.
		return models.Student{}, fmt.Errorf("%w: id %q: %v", ErrCorruptRecord, r.ID, err)
	}
	return s, nil
}

// withID returns s carrying the storage ID assigned on creation.
func withID(s models.Student, id string) (models.Student, error) {
	return newStudentRow(s).withID(id).toModel()
}

func (r studentRow) withID(id string) studentRow {
	r.ID = id
	return r
}

// truncated drops timestamp precision the backend cannot store, so the
// returned record matches what a later read yields.
func (r studentRow) truncated(precision time.Duration) studentRow {
	r.CreatedAt = r.CreatedAt.Truncate(precision)
	r.UpdatedAt = r.UpdatedAt.Truncate(precision)
	return r
}

func rowsToModels(rows []studentRow) ([]models.Student, error) {
	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		s, err := row.toModel()
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	models.SortStudents(students)
	return students, nil
}
