// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-student-registry/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	studentsTable = "alumnos"

	columnID         = "id"
	columnGivenName  = "nombre"
	columnFamilyName = "apellido"
	columnNationalID = "dni"
	columnCreatedAt  = "created_at"
	columnUpdatedAt  = "updated_at"
)

var studentColumns = []string{
	columnID,
	columnGivenName,
	columnFamilyName,
	columnNationalID,
	columnCreatedAt,
	columnUpdatedAt,
}

// buildSelectStudentsQuery selects full rows matching where, ordered for
// listing. A nil where selects every row.
func buildSelectStudentsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(studentColumns...).
		From(studentsTable).
		OrderBy(columnFamilyName, columnGivenName)
	if where != nil {
		query = query.Where(where)
	}

	return toSQL(query)
}

func buildInsertStudentQuery(b sq.StatementBuilderType, s models.Student) (string, []any, error) {
	query := b.Insert(studentsTable).
		Columns(studentColumns...).
		Values(s.ID(), s.GivenName(), s.FamilyName(), s.NationalID(), s.CreatedAt(), s.UpdatedAt())

	return toSQL(query)
}

// buildUpdateStudentQuery overwrites the mutable columns. created_at is
// never written after insert.
func buildUpdateStudentQuery(b sq.StatementBuilderType, s models.Student) (string, []any, error) {
	query := b.Update(studentsTable).
		Set(columnGivenName, s.GivenName()).
		Set(columnFamilyName, s.FamilyName()).
		Set(columnNationalID, s.NationalID()).
		Set(columnUpdatedAt, s.UpdatedAt()).
		Where(sq.Eq{columnID: s.ID()})

	return toSQL(query)
}

func buildDeleteStudentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(b.Delete(studentsTable).Where(sq.Eq{columnID: id}))
}

// buildNationalIDExistsQuery selects at most one row holding nationalID
// whose id differs from excludeID. An empty excludeID excludes nothing.
func buildNationalIDExistsQuery(b sq.StatementBuilderType, nationalID, excludeID string) (string, []any, error) {
	query := b.Select("1").
		From(studentsTable).
		Where(sq.Eq{columnNationalID: nationalID}).
		Limit(1)
	if excludeID != "" {
		query = query.Where(sq.NotEq{columnID: excludeID})
	}

	return toSQL(query)
}

func toSQL(query sq.Sqlizer) (string, []any, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}
