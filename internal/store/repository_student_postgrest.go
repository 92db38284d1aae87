// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/models"
)

const (
	postgrestSelectAll = "*"
	postgrestOrder     = columnFamilyName + ".asc," + columnGivenName + ".asc"
)

// postgrestStudentRepository is the [StudentRepository] for a hosted
// PostgREST backend. The backend assigns record IDs.
type postgrestStudentRepository struct {
	rest   adapter.RESTAdapter
	table  string
	logger *logger.Logger
}

// studentPatch is the body of an update. created_at is left out so the
// backend keeps the original value.
type studentPatch struct {
	GivenName  string    `json:"nombre"`
	FamilyName string    `json:"apellido"`
	NationalID string    `json:"dni"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPostgRESTStudentRepository constructs a [StudentRepository] over rest
// for the given table.
func NewPostgRESTStudentRepository(rest adapter.RESTAdapter, table string, logger *logger.Logger) StudentRepository {
	if table == "" {
		table = studentsTable
	}
	logger.Debug().Str("table", table).Msg("creating postgrest student repository")
	return &postgrestStudentRepository{
		rest:   rest,
		table:  table,
		logger: logger,
	}
}

func eq(value string) []string  { return []string{"eq." + value} }
func neq(value string) []string { return []string{"neq." + value} }

func (r *postgrestStudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	exists, err := r.NationalIDExists(ctx, student.NationalID(), "")
	if err != nil {
		return models.Student{}, err
	}
	if exists {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	var created []studentRow
	if err = r.rest.Insert(ctx, r.table, newStudentRow(student).withID(""), &created); err != nil {
		return models.Student{}, r.writeError(ctx, opCreate, student, err)
	}
	if len(created) == 0 {
		return models.Student{}, models.NewStoreError(opCreate, errors.New("backend returned no row"))
	}

	stored, err := created[0].toModel()
	if err != nil {
		return models.Student{}, models.NewStoreError(opCreate, err)
	}
	return stored, nil
}

func (r *postgrestStudentRepository) GetByID(ctx context.Context, id string) (models.Student, bool, error) {
	return r.getOne(ctx, url.Values{columnID: eq(id)})
}

func (r *postgrestStudentRepository) GetByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error) {
	return r.getOne(ctx, url.Values{columnNationalID: eq(models.NormalizeNationalID(nationalID))})
}

func (r *postgrestStudentRepository) getOne(ctx context.Context, filters url.Values) (models.Student, bool, error) {
	filters.Set("select", postgrestSelectAll)

	var rows []studentRow
	if err := r.rest.Select(ctx, r.table, filters, &rows); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgrestStudentRepository.getOne").Msg("select failed")
		return models.Student{}, false, models.NewStoreError(opRead, err)
	}
	if len(rows) == 0 {
		return models.Student{}, false, nil
	}

	s, err := rows[0].toModel()
	if err != nil {
		return models.Student{}, false, models.NewStoreError(opRead, err)
	}
	return s, true, nil
}

func (r *postgrestStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	filters := url.Values{
		"select": {postgrestSelectAll},
		"order":  {postgrestOrder},
	}

	var rows []studentRow
	if err := r.rest.Select(ctx, r.table, filters, &rows); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgrestStudentRepository.List").Msg("select failed")
		return nil, models.NewStoreError(opList, err)
	}

	// the backend collation may differ from ordinal order
	students, err := rowsToModels(rows)
	if err != nil {
		return nil, models.NewStoreError(opList, err)
	}
	return students, nil
}

func (r *postgrestStudentRepository) Update(ctx context.Context, student models.Student) (models.Student, error) {
	_, found, err := r.GetByID(ctx, student.ID())
	if err != nil {
		return models.Student{}, err
	}
	if !found {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}

	exists, err := r.NationalIDExists(ctx, student.NationalID(), student.ID())
	if err != nil {
		return models.Student{}, err
	}
	if exists {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	patch := studentPatch{
		GivenName:  student.GivenName(),
		FamilyName: student.FamilyName(),
		NationalID: student.NationalID(),
		UpdatedAt:  student.UpdatedAt(),
	}

	var updated []studentRow
	if err = r.rest.Update(ctx, r.table, url.Values{columnID: eq(student.ID())}, patch, &updated); err != nil {
		return models.Student{}, r.writeError(ctx, opUpdate, student, err)
	}
	if len(updated) == 0 {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}

	stored, err := updated[0].toModel()
	if err != nil {
		return models.Student{}, models.NewStoreError(opUpdate, err)
	}
	return stored, nil
}

func (r *postgrestStudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted []studentRow
	if err := r.rest.Delete(ctx, r.table, url.Values{columnID: eq(id)}, &deleted); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgrestStudentRepository.Delete").Msg("delete failed")
		return false, models.NewStoreError(opDelete, err)
	}
	return len(deleted) > 0, nil
}

func (r *postgrestStudentRepository) NationalIDExists(ctx context.Context, nationalID, excludeID string) (bool, error) {
	filters := url.Values{
		"select":         {columnID},
		columnNationalID: eq(models.NormalizeNationalID(nationalID)),
	}
	if excludeID != "" {
		filters[columnID] = neq(excludeID)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := r.rest.Select(ctx, r.table, filters, &rows); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postgrestStudentRepository.NationalIDExists").Msg("select failed")
		return false, models.NewStoreError(opRead, err)
	}
	return len(rows) > 0, nil
}

func (r *postgrestStudentRepository) writeError(ctx context.Context, op string, student models.Student, err error) error {
	if errors.Is(err, adapter.ErrUniqueViolation) {
		return models.NewDuplicateIdentifierError(student.NationalID())
	}
	logger.FromContext(ctx).Err(err).
		Str("func", "postgrestStudentRepository."+op).
		Msg("write failed")
	return models.NewStoreError(op, err)
}
