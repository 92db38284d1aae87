// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Sentinel errors of the registry's error taxonomy. Every typed error in this
// file unwraps to exactly one of them, so callers can match with [errors.Is]
// without knowing the concrete type.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("student not found")
	ErrDuplicateIdentifier = errors.New("national id already registered")
	ErrAuthentication      = errors.New("authentication error")
	ErrSessionExpired      = errors.New("session expired")
	ErrStore               = errors.New("store error")
)

// ErrorCode is the stable machine-readable code carried by every domain error.
type ErrorCode string

const (
	CodeValidation          ErrorCode = "VALIDATION_ERROR"
	CodeNotFound            ErrorCode = "ALUMNO_NOT_FOUND"
	CodeDuplicateIdentifier ErrorCode = "DNI_DUPLICADO"
	CodeAuthentication      ErrorCode = "AUTH_ERROR"
	CodeSessionExpired      ErrorCode = "SESSION_EXPIRED"
	CodeStore               ErrorCode = "REPOSITORY_ERROR"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// Field names reported by [ValidationError]. They match the JSON keys of a
// student record.
const (
	FieldGivenName  = "nombre"
	FieldFamilyName = "apellido"
	FieldNationalID = "dni"
	FieldBody       = "body"
)

var fieldLabels = map[string]string{
	FieldGivenName:  "given name",
	FieldFamilyName: "family name",
	FieldNationalID: "national id",
}

// DomainError is implemented by every error of the taxonomy.
type DomainError interface {
	error
	// Code returns the stable machine-readable code.
	Code() ErrorCode
	// Message returns the human readable message safe to show to clients.
	Message() string
}

// ValidationError reports a field that violates a record rule.
type ValidationError struct {
	Field string
	Msg   string
}

// NewValidationError returns a [*ValidationError] for field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string   { return e.Msg }
func (e *ValidationError) Code() ErrorCode { return CodeValidation }
func (e *ValidationError) Message() string { return e.Msg }
func (e *ValidationError) Unwrap() error   { return ErrValidation }

// NotFoundError reports a lookup key with no matching record. Key names the
// field that was looked up and defaults to "id".
type NotFoundError struct {
	ID  string
	Key string
}

// NewNotFoundError returns a [*NotFoundError] for id.
func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// NewNationalIDNotFoundError returns a [*NotFoundError] for a national ID
// lookup.
func NewNationalIDNotFoundError(nationalID string) *NotFoundError {
	return &NotFoundError{ID: nationalID, Key: FieldNationalID}
}

func (e *NotFoundError) Error() string   { return e.Message() }
func (e *NotFoundError) Code() ErrorCode { return CodeNotFound }
func (e *NotFoundError) Unwrap() error   { return ErrNotFound }

func (e *NotFoundError) Message() string {
	key := e.Key
	if key == "" {
		key = "id"
	}
	return fmt.Sprintf("student with %s '%s' not found", key, e.ID)
}

// DuplicateIdentifierError reports a national ID that already belongs to
// another record.
type DuplicateIdentifierError struct {
	Value string
}

// NewDuplicateIdentifierError returns a [*DuplicateIdentifierError] for the
// given national ID.
func NewDuplicateIdentifierError(nationalID string) *DuplicateIdentifierError {
	return &DuplicateIdentifierError{Value: nationalID}
}

func (e *DuplicateIdentifierError) Error() string   { return e.Message() }
func (e *DuplicateIdentifierError) Code() ErrorCode { return CodeDuplicateIdentifier }
func (e *DuplicateIdentifierError) Message() string {
	return fmt.Sprintf("national id '%s' is already registered", e.Value)
}
func (e *DuplicateIdentifierError) Unwrap() error { return ErrDuplicateIdentifier }

// AuthenticationError reports a rejected or missing bearer credential.
type AuthenticationError struct {
	Detail string
}

// NewAuthenticationError returns an [*AuthenticationError] with detail.
func NewAuthenticationError(detail string) *AuthenticationError {
	return &AuthenticationError{Detail: detail}
}

func (e *AuthenticationError) Error() string   { return e.Detail }
func (e *AuthenticationError) Code() ErrorCode { return CodeAuthentication }
func (e *AuthenticationError) Message() string { return e.Detail }
func (e *AuthenticationError) Unwrap() error   { return ErrAuthentication }

// SessionExpiredError reports a well-formed credential whose expiry is in
// the past. It is a kind of authentication failure: it matches both
// [ErrSessionExpired] and [ErrAuthentication].
type SessionExpiredError struct{}

// NewSessionExpiredError returns a [*SessionExpiredError].
func NewSessionExpiredError() *SessionExpiredError {
	return &SessionExpiredError{}
}

func (e *SessionExpiredError) Error() string   { return e.Message() }
func (e *SessionExpiredError) Code() ErrorCode { return CodeSessionExpired }
func (e *SessionExpiredError) Message() string {
	return "session expired, please sign in again"
}

// Is implements the [errors.Is] contract.
func (e *SessionExpiredError) Is(target error) bool {
	return target == ErrSessionExpired || target == ErrAuthentication
}

// StoreError reports a failure talking to the persistence backend. The
// underlying cause is kept for logging but is not part of [StoreError.Message].
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError returns a [*StoreError] for the failed operation op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}
func (e *StoreError) Code() ErrorCode { return CodeStore }
func (e *StoreError) Message() string { return fmt.Sprintf("failed to %s student data", e.Op) }
func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStore}
	}
	return []error{ErrStore, e.Err}
}

// IsDomainError reports whether err (or an error it wraps) belongs to the
// taxonomy.
func IsDomainError(err error) bool {
	var domainErr DomainError
	return errors.As(err, &domainErr)
}

// ErrorResponse is the wire form of an error. It is identical for every
// transport.
type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"codigo"`
	Field string    `json:"campo,omitempty"`
}

const internalErrorMessage = "internal server error"

// NewErrorResponse converts err into its wire form. Errors outside the
// taxonomy become a generic internal error that carries no detail.
func NewErrorResponse(err error) ErrorResponse {
	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		return ErrorResponse{Error: internalErrorMessage, Code: CodeInternal}
	}

	resp := ErrorResponse{Error: domainErr.Message(), Code: domainErr.Code()}
	if validationErr, ok := domainErr.(*ValidationError); ok {
		resp.Field = validationErr.Field
	}

	return resp
}
