// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Field limits of a [Student], counted in characters after trimming.
const (
	MaxGivenNameLength  = 100
	MaxFamilyNameLength = 100
	MaxNationalIDLength = 20
)

// TimestampLayout is the ISO-8601 layout used for record timestamps on the
// wire. UTC values are rendered with an explicit "+00:00" offset.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Student is the student record managed by the registry.
//
// A Student value is always valid and normalized: it can only be obtained
// through [NewStudent] (or [Student.Revise]), which trims and validates every
// field, title-cases both names and uppercases the national ID. Fields are
// unexported so a record can never drift from its canonical form after
// construction; updates produce a new value instead of mutating this one.
//
// National ID format is intentionally not validated beyond presence and
// length because it varies by jurisdiction.
type Student struct {
	id         string
	givenName  string
	familyName string
	nationalID string
	createdAt  time.Time
	updatedAt  time.Time
}

// StudentOption customises a [Student] under construction. Options are used
// by stores to rehydrate persisted records and by [Student.Revise].
type StudentOption func(*Student)

// WithID sets the storage identifier of the record.
func WithID(id string) StudentOption {
	return func(s *Student) {
		s.id = id
	}
}

// WithCreatedAt sets the creation time of the record. The value is
// converted to UTC.
func WithCreatedAt(t time.Time) StudentOption {
	return func(s *Student) {
		s.createdAt = t.UTC()
	}
}

// WithUpdatedAt sets the last modification time of the record. The value is
// converted to UTC.
func WithUpdatedAt(t time.Time) StudentOption {
	return func(s *Student) {
		s.updatedAt = t.UTC()
	}
}

// NewStudent validates and normalizes the raw field values and returns the
// resulting record.
//
// Fields are checked in a fixed order (given name, family name, national ID)
// and the first violation is returned as a [*ValidationError] naming the
// offending field. Both timestamps default to the current UTC time.
func NewStudent(givenName, familyName, nationalID string, opts ...StudentOption) (Student, error) {
	givenName, err := normalizeField(FieldGivenName, givenName, MaxGivenNameLength)
	if err != nil {
		return Student{}, err
	}
	familyName, err = normalizeField(FieldFamilyName, familyName, MaxFamilyNameLength)
	if err != nil {
		return Student{}, err
	}
	nationalID, err = normalizeField(FieldNationalID, nationalID, MaxNationalIDLength)
	if err != nil {
		return Student{}, err
	}

	now := time.Now().UTC()
	s := Student{
		givenName:  titleCase(givenName),
		familyName: titleCase(familyName),
		nationalID: NormalizeNationalID(nationalID),
		createdAt:  now,
		updatedAt:  now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	// updated_at never precedes created_at
	if s.updatedAt.Before(s.createdAt) {
		s.updatedAt = s.createdAt
	}

	return s, nil
}

// Revise returns a new record carrying the receiver's ID and creation time,
// the given field values and a fresh modification time. The receiver is left
// untouched.
func (s Student) Revise(givenName, familyName, nationalID string) (Student, error) {
	return NewStudent(givenName, familyName, nationalID,
		WithID(s.id),
		WithCreatedAt(s.createdAt),
	)
}

// ID returns the storage identifier, empty for a record not yet persisted.
func (s Student) ID() string { return s.id }

// GivenName returns the normalized given name.
func (s Student) GivenName() string { return s.givenName }

// FamilyName returns the normalized family name.
func (s Student) FamilyName() string { return s.familyName }

// NationalID returns the normalized (uppercased) national ID.
func (s Student) NationalID() string { return s.nationalID }

// CreatedAt returns the creation time in UTC.
func (s Student) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last modification time in UTC.
func (s Student) UpdatedAt() time.Time { return s.updatedAt }

// IsNew reports whether the record has not been persisted yet.
func (s Student) IsNew() bool { return s.id == "" }

// FullName returns "<given name> <family name>".
func (s Student) FullName() string {
	return s.givenName + " " + s.familyName
}

// Equal reports whether s and other are the same record. Identity is the
// storage ID alone; a record without an ID is never equal to another record.
func (s Student) Equal(other Student) bool {
	if s.id == "" || other.id == "" {
		return false
	}
	return s.id == other.id
}

// String implements [fmt.Stringer].
func (s Student) String() string {
	return fmt.Sprintf("%s (DNI: %s)", s.FullName(), s.nationalID)
}

type studentJSON struct {
	ID         *string `json:"id"`
	GivenName  string  `json:"nombre"`
	FamilyName string  `json:"apellido"`
	NationalID string  `json:"dni"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// MarshalJSON renders the record as
// {id, nombre, apellido, dni, created_at, updated_at}.
// A new record is rendered with a null id.
func (s Student) MarshalJSON() ([]byte, error) {
	out := studentJSON{
		GivenName:  s.givenName,
		FamilyName: s.familyName,
		NationalID: s.nationalID,
		CreatedAt:  s.createdAt.Format(TimestampLayout),
		UpdatedAt:  s.updatedAt.Format(TimestampLayout),
	}
	if s.id != "" {
		id := s.id
		out.ID = &id
	}
	return json.Marshal(out)
}

// StudentRequest is the body accepted by the create and update endpoints.
type StudentRequest struct {
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	NationalID string `json:"dni"`
}

// NormalizeNationalID returns the canonical form of a national ID: trimmed
// and uppercased. Lookups by national ID must use this form.
func NormalizeNationalID(nationalID string) string {
	return strings.ToUpper(strings.TrimSpace(nationalID))
}

// SortStudents orders records by family name, then given name, using
// ordinal comparison of the normalized values.
func SortStudents(students []Student) {
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].familyName != students[j].familyName {
			return students[i].familyName < students[j].familyName
		}
		return students[i].givenName < students[j].givenName
	})
}

func normalizeField(field, value string, maxLength int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", NewValidationError(field, fmt.Sprintf("%s is required", fieldLabels[field]))
	}
	if utf8.RuneCountInString(value) > maxLength {
		return "", NewValidationError(field,
			fmt.Sprintf("%s must not exceed %d characters", fieldLabels[field], maxLength))
	}
	return value, nil
}

// titleCase upper-cases the first letter of every whitespace-delimited word
// and lower-cases the rest. Whitespace inside the value is kept as is.
func titleCase(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	wordStart := true
	for _, r := range value {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
		case wordStart:
			r = unicode.ToUpper(r)
			wordStart = false
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
