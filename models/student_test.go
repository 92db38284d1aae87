// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent_Normalizes(t *testing.T) {
	s, err := NewStudent(" juan ", " perez ", "abc123")
	require.NoError(t, err)

	assert.Equal(t, "Juan", s.GivenName())
	assert.Equal(t, "Perez", s.FamilyName())
	assert.Equal(t, "ABC123", s.NationalID())
	assert.True(t, s.IsNew())
	assert.Empty(t, s.ID())
}

func TestNewStudent_TitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word upper", input: "MARIA", want: "Maria"},
		{name: "two words", input: "maria jose", want: "Maria Jose"},
		{name: "mixed case", input: "mArIa   dEL carmen", want: "Maria   Del Carmen"},
		{name: "accented letters", input: "ÁNGEL núñez", want: "Ángel Núñez"},
		{name: "hyphen is not a word break", input: "garcia-lopez", want: "Garcia-lopez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.input, "Perez", "1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.GivenName())
		})
	}
}

func TestNewStudent_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		givenName   string
		familyName  string
		nationalID  string
		wantField   string
		wantMessage string
	}{
		{name: "empty given name", givenName: "", familyName: "Perez", nationalID: "1", wantField: FieldGivenName, wantMessage: "required"},
		{name: "blank given name", givenName: "   ", familyName: "Perez", nationalID: "1", wantField: FieldGivenName, wantMessage: "required"},
		{name: "empty family name", givenName: "Juan", familyName: "", nationalID: "1", wantField: FieldFamilyName, wantMessage: "required"},
		{name: "blank family name", givenName: "Juan", familyName: "\t\n", nationalID: "1", wantField: FieldFamilyName, wantMessage: "required"},
		{name: "empty national id", givenName: "Juan", familyName: "Perez", nationalID: "", wantField: FieldNationalID, wantMessage: "required"},
		{name: "blank national id", givenName: "Juan", familyName: "Perez", nationalID: "  ", wantField: FieldNationalID, wantMessage: "required"},
		{name: "given name too long", givenName: strings.Repeat("A", 101), familyName: "Perez", nationalID: "1", wantField: FieldGivenName, wantMessage: "100"},
		{name: "family name too long", givenName: "Juan", familyName: strings.Repeat("b", 101), nationalID: "1", wantField: FieldFamilyName, wantMessage: "100"},
		{name: "national id too long", givenName: "Juan", familyName: "Perez", nationalID: strings.Repeat("9", 21), wantField: FieldNationalID, wantMessage: "20"},
		{name: "first violation wins", givenName: "", familyName: "", nationalID: "", wantField: FieldGivenName, wantMessage: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.givenName, tt.familyName, tt.nationalID)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Contains(t, validationErr.Message(), tt.wantMessage)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewStudent_LimitsCountCharactersAfterTrim(t *testing.T) {
	// 100 multi-byte letters surrounded by whitespace are within the limit
	name := "  " + strings.Repeat("ñ", 100) + "  "
	s, err := NewStudent(name, "Perez", strings.Repeat("x", 20))
	require.NoError(t, err)
	assert.Equal(t, 100, len([]rune(s.GivenName())))
	assert.Equal(t, strings.Repeat("X", 20), s.NationalID())
}

func TestNewStudent_Timestamps(t *testing.T) {
	before := time.Now().UTC()
	s, err := NewStudent("Juan", "Perez", "1")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, s.CreatedAt().Location())
	assert.False(t, s.CreatedAt().Before(before))
	assert.Equal(t, s.CreatedAt(), s.UpdatedAt())
}

func TestNewStudent_UpdatedAtNeverBeforeCreatedAt(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s, err := NewStudent("Juan", "Perez", "1",
		WithCreatedAt(created),
		WithUpdatedAt(created.Add(-time.Hour)),
	)
	require.NoError(t, err)
	assert.Equal(t, created, s.UpdatedAt())
}

func TestStudent_Revise(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	original, err := NewStudent("Juan", "Perez", "123", WithID("id-1"), WithCreatedAt(created), WithUpdatedAt(created))
	require.NoError(t, err)

	revised, err := original.Revise(" pedro ", "gomez", "456a")
	require.NoError(t, err)

	assert.Equal(t, "id-1", revised.ID())
	assert.Equal(t, created, revised.CreatedAt())
	assert.True(t, revised.UpdatedAt().After(created))
	assert.Equal(t, "Pedro", revised.GivenName())
	assert.Equal(t, "456A", revised.NationalID())

	// the original value is untouched
	assert.Equal(t, "Juan", original.GivenName())
	assert.Equal(t, created, original.UpdatedAt())
}

func TestStudent_ReviseValidates(t *testing.T) {
	original, err := NewStudent("Juan", "Perez", "123", WithID("id-1"))
	require.NoError(t, err)

	_, err = original.Revise("Juan", "  ", "123")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStudent_Equal(t *testing.T) {
	a, _ := NewStudent("Juan", "Perez", "1", WithID("same"))
	b, _ := NewStudent("Maria", "Lopez", "2", WithID("same"))
	c, _ := NewStudent("Juan", "Perez", "1", WithID("other"))
	n1, _ := NewStudent("Juan", "Perez", "1")
	n2, _ := NewStudent("Juan", "Perez", "1")

	assert.True(t, a.Equal(b), "same id, different fields")
	assert.False(t, a.Equal(c), "different id, same fields")
	assert.False(t, n1.Equal(n2), "records without id")
	assert.False(t, n1.Equal(n1), "a new record is not equal even to itself")
}

func TestStudent_Helpers(t *testing.T) {
	s, err := NewStudent("juan carlos", "perez", "12345678a")
	require.NoError(t, err)

	assert.Equal(t, "Juan Carlos Perez", s.FullName())
	assert.Equal(t, "Juan Carlos Perez (DNI: 12345678A)", s.String())
}

func TestStudent_MarshalJSON(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	s, err := NewStudent("Juan", "Perez", "123", WithID("abc"), WithCreatedAt(ts), WithUpdatedAt(ts))
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "abc",
		"nombre": "Juan",
		"apellido": "Perez",
		"dni": "123",
		"created_at": "2024-01-15T10:30:00.000000+00:00",
		"updated_at": "2024-01-15T10:30:00.000000+00:00"
	}`, string(data))
}

func TestStudent_MarshalJSON_NewRecordHasNullID(t *testing.T) {
	s, err := NewStudent("Juan", "Perez", "123")
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "id")
	assert.Nil(t, decoded["id"])
}

func TestSortStudents(t *testing.T) {
	zapata, _ := NewStudent("Ana", "Zapata", "1")
	alvarez, _ := NewStudent("Luis", "Alvarez", "2")
	martinez, _ := NewStudent("Eva", "Martinez", "3")
	alvarezA, _ := NewStudent("Ana", "Alvarez", "4")

	list := []Student{zapata, alvarez, martinez, alvarezA}
	SortStudents(list)

	got := make([]string, 0, len(list))
	for _, s := range list {
		got = append(got, s.FullName())
	}
	assert.Equal(t, []string{"Ana Alvarez", "Luis Alvarez", "Eva Martinez", "Ana Zapata"}, got)
}

func TestNormalizeNationalID(t *testing.T) {
	assert.Equal(t, "12345678", NormalizeNationalID("  12345678  "))
	assert.Equal(t, "X1Y2", NormalizeNationalID("x1y2"))
}
