// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the hosted backend (a PostgREST endpoint such as
// Supabase) over HTTP.
//
// [RESTAdapter] exposes the four table operations the store needs. HTTP
// failures are mapped to the sentinel errors of this package; a unique
// constraint rejection is reported as [ErrUniqueViolation] regardless of the
// status code that carried it.
package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/rest_adapter_mock.go -package=mock

// RESTAdapter performs row operations on a table exposed by PostgREST.
//
// filters are PostgREST query parameters (e.g. "id" -> "eq.42",
// "order" -> "apellido.asc"). out receives the decoded JSON array of rows
// returned by the backend; it may be nil when the caller does not need them.
type RESTAdapter interface {
	// Select reads the rows of table matching filters.
	Select(ctx context.Context, table string, filters url.Values, out any) error

	// Insert writes row into table and decodes the stored representation.
	Insert(ctx context.Context, table string, row any, out any) error

	// Update applies patch to the rows matching filters and decodes the
	// updated representation (empty when nothing matched).
	Update(ctx context.Context, table string, filters url.Values, patch any, out any) error

	// Delete removes the rows matching filters and decodes the removed
	// representation (empty when nothing matched).
	Delete(ctx context.Context, table string, filters url.Values, out any) error
}
