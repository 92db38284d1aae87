// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository is the gateway to a student record backend.
//
// Lookups report a missing record through the boolean result, never through
// an error. Create and Update return a [*models.DuplicateIdentifierError]
// when the national ID belongs to another record, Update returns a
// [*models.NotFoundError] when the record is gone, and any other backend
// failure surfaces as a [*models.StoreError].
type StudentRepository interface {
	// Create persists a new record, assigns its ID and returns the stored value.
	Create(ctx context.Context, student models.Student) (models.Student, error)

	// GetByID returns the record with the given storage ID.
	GetByID(ctx context.Context, id string) (models.Student, bool, error)

	// GetByNationalID returns the record holding the normalized national ID.
	GetByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error)

	// List returns every record ordered by family name, then given name.
	List(ctx context.Context) ([]models.Student, error)

	// Update overwrites the stored record carrying student.ID().
	Update(ctx context.Context, student models.Student) (models.Student, error)

	// Delete removes the record and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// NationalIDExists reports whether a record other than excludeID holds
	// the national ID. An empty excludeID excludes nothing.
	NationalIDExists(ctx context.Context, nationalID, excludeID string) (bool, error)
}
