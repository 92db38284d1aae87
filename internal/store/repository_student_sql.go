// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	sq "github.com/Masterminds/squirrel"
)

// sqlStudentRepository is the [StudentRepository] for the "alumnos" table of
// a PostgreSQL or SQLite database. Record IDs are generated in process.
type sqlStudentRepository struct {
	db     *DB
	newID  func() string
	logger *logger.Logger
}

// NewSQLStudentRepository constructs a [StudentRepository] backed by db.
func NewSQLStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql student repository")
	return &sqlStudentRepository{
		db:     db,
		newID:  utils.NewID,
		logger: logger,
	}
}

// Create checks the national ID up front and inserts the record. A unique
// constraint rejection from the database (a concurrent insert won the race)
// is reported the same way as a pre-flight hit.
func (r *sqlStudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	exists, err := r.NationalIDExists(ctx, student.NationalID(), "")
	if err != nil {
		return models.Student{}, err
	}
	if exists {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	stored, err := withID(student, r.newID())
	if err != nil {
		return models.Student{}, models.NewStoreError(opCreate, err)
	}

	query, args, err := buildInsertStudentQuery(r.db.builder(), stored)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.Create").Msg("failed to create query")
		return models.Student{}, models.NewStoreError(opCreate, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
		}
		r.logStatementError(ctx, err, "sqlStudentRepository.Create")
		return models.Student{}, models.NewStoreError(opCreate, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	log.Debug().Str("student_id", stored.ID()).Msg("student inserted")

	return stored, nil
}

func (r *sqlStudentRepository) GetByID(ctx context.Context, id string) (models.Student, bool, error) {
	return r.getOne(ctx, sq.Eq{columnID: id}, "sqlStudentRepository.GetByID")
}

func (r *sqlStudentRepository) GetByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error) {
	return r.getOne(ctx, sq.Eq{columnNationalID: models.NormalizeNationalID(nationalID)}, "sqlStudentRepository.GetByNationalID")
}

func (r *sqlStudentRepository) getOne(ctx context.Context, where sq.Sqlizer, fn string) (models.Student, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStudentsQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return models.Student{}, false, models.NewStoreError(opRead, err)
	}

	var row studentRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.ID,
		&row.GivenName,
		&row.FamilyName,
		&row.NationalID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan student row")
		return models.Student{}, false, models.NewStoreError(opRead, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	s, err := row.toModel()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("stored student failed validation")
		return models.Student{}, false, models.NewStoreError(opRead, err)
	}

	return s, true, nil
}

func (r *sqlStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStudentsQuery(r.db.builder(), nil)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.List").Msg("failed to create query")
		return nil, models.NewStoreError(opList, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.List").Msg("failed to execute query for listing students")
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	results := make([]studentRow, 0, 50)
	for rows.Next() {
		var row studentRow
		if scanErr := rows.Scan(
			&row.ID,
			&row.GivenName,
			&row.FamilyName,
			&row.NationalID,
			&row.CreatedAt,
			&row.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "sqlStudentRepository.List").Msg("failed to scan student row")
			return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
		}
		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "sqlStudentRepository.List").Msg("error occurred during rows iteration")
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	students, err := rowsToModels(results)
	if err != nil {
		return nil, models.NewStoreError(opList, err)
	}
	return students, nil
}

func (r *sqlStudentRepository) Update(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

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

	query, args, err := buildUpdateStudentQuery(r.db.builder(), student)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.Update").Msg("failed to create query")
		return models.Student{}, models.NewStoreError(opUpdate, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
		}
		r.logStatementError(ctx, err, "sqlStudentRepository.Update")
		return models.Student{}, models.NewStoreError(opUpdate, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Student{}, models.NewStoreError(opUpdate, err)
	}
	// deleted between the lookup and the write
	if affected == 0 {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}

	return student, nil
}

func (r *sqlStudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStudentQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.Delete").Msg("failed to create query")
		return false, models.NewStoreError(opDelete, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logStatementError(ctx, err, "sqlStudentRepository.Delete")
		return false, models.NewStoreError(opDelete, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, models.NewStoreError(opDelete, err)
	}

	return affected > 0, nil
}

func (r *sqlStudentRepository) NationalIDExists(ctx context.Context, nationalID, excludeID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNationalIDExistsQuery(r.db.builder(), models.NormalizeNationalID(nationalID), excludeID)
	if err != nil {
		log.Err(err).Str("func", "sqlStudentRepository.NationalIDExists").Msg("failed to create query")
		return false, models.NewStoreError(opRead, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "sqlStudentRepository.NationalIDExists").Msg("failed to check national id")
		return false, models.NewStoreError(opRead, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return true, nil
}

func (r *sqlStudentRepository) logStatementError(ctx context.Context, err error, fn string) {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
		Msg("failed to execute statement")
}
