// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by [RESTAdapter] implementations. HTTP failures are mapped
// by mapHTTPError so callers can match them with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUniqueViolation marks a write rejected by a unique constraint of the
	// backend, whatever status code carried it.
	ErrUniqueViolation = errors.New("unique constraint violation")

	ErrEmptyBaseURL = errors.New("empty base url")
)
