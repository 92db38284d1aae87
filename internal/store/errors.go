// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrCorruptRecord is returned when a stored row no longer passes the
	// record validation rules.
	ErrCorruptRecord = errors.New("stored record is invalid")
)

// Low-level operation errors. Repository methods wrap them into a
// [models.StoreError] so callers see a single failure kind.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan student row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan student rows")

	// ErrReadingDocument is returned when a document returned by the
	// document backend cannot be decoded.
	ErrReadingDocument = errors.New("failed to decode student document")
)
