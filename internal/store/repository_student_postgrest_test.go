// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/mock"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fill decodes the JSON form of v into out, the way the REST adapter fills
// its result argument.
func fill(t *testing.T, out any, v any) {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func newTestPostgRESTRepo(t *testing.T) (StudentRepository, *mock.MockRESTAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rest := mock.NewMockRESTAdapter(ctrl)
	return NewPostgRESTStudentRepository(rest, "", logger.Nop()), rest
}

func restRow(id, given, family, nationalID string) map[string]any {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return map[string]any{
		"id":         id,
		"nombre":     given,
		"apellido":   family,
		"dni":        nationalID,
		"created_at": now,
		"updated_at": now,
	}
}

// expectExists registers the pre-flight national ID lookup.
func expectExists(t *testing.T, rest *mock.MockRESTAdapter, nationalID, excludeID string, matches ...string) {
	rest.EXPECT().
		Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters url.Values, out any) error {
			assert.Equal(t, "eq."+nationalID, filters.Get("dni"))
			if excludeID == "" {
				assert.Empty(t, filters.Get("id"))
			} else {
				assert.Equal(t, "neq."+excludeID, filters.Get("id"))
			}

			rows := make([]map[string]string, 0, len(matches))
			for _, id := range matches {
				rows = append(rows, map[string]string{"id": id})
			}
			fill(t, out, rows)
			return nil
		})
}

func TestPostgRESTCreate(t *testing.T) {
	t.Run("backend assigns the id", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)

		gomock.InOrder(
			expectExistsCall(t, rest, "ABC123"),
			rest.EXPECT().
				Insert(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, row any, out any) error {
					body, err := json.Marshal(row)
					require.NoError(t, err)
					assert.NotContains(t, string(body), `"id"`)
					assert.Contains(t, string(body), `"dni":"ABC123"`)

					fill(t, out, []map[string]any{restRow("42", "Juan", "Perez", "ABC123")})
					return nil
				}),
		)

		created, err := repo.Create(context.Background(), mustStudent(t, "juan", "perez", "abc123"))
		require.NoError(t, err)
		assert.Equal(t, "42", created.ID())
		assert.Equal(t, "Perez", created.FamilyName())
	})

	t.Run("pre-flight duplicate", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		expectExists(t, rest, "ABC123", "", "7")

		_, err := repo.Create(context.Background(), mustStudent(t, "Juan", "Perez", "ABC123"))
		require.ErrorIs(t, err, models.ErrDuplicateIdentifier)
	})

	t.Run("unique violation from backend", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		expectExists(t, rest, "ABC123", "")
		rest.EXPECT().
			Insert(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: %w: duplicate key value", adapter.ErrConflict, adapter.ErrUniqueViolation))

		_, err := repo.Create(context.Background(), mustStudent(t, "Juan", "Perez", "ABC123"))
		require.ErrorIs(t, err, models.ErrDuplicateIdentifier)
	})

	t.Run("other backend failure", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		expectExists(t, rest, "ABC123", "")
		rest.EXPECT().
			Insert(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			Return(adapter.ErrInternalServerError)

		_, err := repo.Create(context.Background(), mustStudent(t, "Juan", "Perez", "ABC123"))
		require.ErrorIs(t, err, models.ErrStore)
		require.ErrorIs(t, err, adapter.ErrInternalServerError)
	})
}

func expectExistsCall(t *testing.T, rest *mock.MockRESTAdapter, nationalID string) *gomock.Call {
	return rest.EXPECT().
		Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters url.Values, out any) error {
			assert.Equal(t, "eq."+nationalID, filters.Get("dni"))
			fill(t, out, []map[string]string{})
			return nil
		})
}

func TestPostgRESTGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		rest.EXPECT().
			Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filters url.Values, out any) error {
				assert.Equal(t, "eq.42", filters.Get("id"))
				assert.Equal(t, "*", filters.Get("select"))
				fill(t, out, []map[string]any{restRow("42", "Ana", "Lopez", "X1")})
				return nil
			})

		s, found, err := repo.GetByID(context.Background(), "42")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Ana Lopez", s.FullName())
	})

	t.Run("absent", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		rest.EXPECT().
			Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
				fill(t, out, []map[string]any{})
				return nil
			})

		_, found, err := repo.GetByID(context.Background(), "42")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("backend error", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		rest.EXPECT().
			Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			Return(adapter.ErrUnauthorized)

		_, _, err := repo.GetByID(context.Background(), "42")
		require.ErrorIs(t, err, models.ErrStore)
	})
}

func TestPostgRESTGetByNationalID_Normalizes(t *testing.T) {
	repo, rest := newTestPostgRESTRepo(t)
	rest.EXPECT().
		Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters url.Values, out any) error {
			assert.Equal(t, "eq.AB12", filters.Get("dni"))
			fill(t, out, []map[string]any{restRow("1", "Ana", "Lopez", "AB12")})
			return nil
		})

	_, found, err := repo.GetByNationalID(context.Background(), " ab12 ")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPostgRESTList_OrdersAndResorts(t *testing.T) {
	repo, rest := newTestPostgRESTRepo(t)
	rest.EXPECT().
		Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters url.Values, out any) error {
			assert.Equal(t, "apellido.asc,nombre.asc", filters.Get("order"))
			fill(t, out, []map[string]any{
				restRow("1", "Luis", "Zapata", "A"),
				restRow("2", "Ana", "Alvarez", "B"),
				restRow("3", "Eva", "Martinez", "C"),
			})
			return nil
		})

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Alvarez", students[0].FamilyName())
	assert.Equal(t, "Martinez", students[1].FamilyName())
	assert.Equal(t, "Zapata", students[2].FamilyName())
}

func TestPostgRESTUpdate(t *testing.T) {
	existing := func(t *testing.T, rest *mock.MockRESTAdapter, rows ...map[string]any) *gomock.Call {
		return rest.EXPECT().
			Select(gomock.Any(), studentsTable, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
				fill(t, out, rows)
				return nil
			})
	}
	revised := func(t *testing.T, nationalID string) models.Student {
		s, err := models.NewStudent("Ana Maria", "Lopez", nationalID, models.WithID("42"))
		require.NoError(t, err)
		return s
	}

	t.Run("success sends patch without created_at", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		existing(t, rest, restRow("42", "Ana", "Lopez", "X1"))
		expectExists(t, rest, "X1", "42")
		rest.EXPECT().
			Update(gomock.Any(), studentsTable, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filters url.Values, patch any, out any) error {
				assert.Equal(t, "eq.42", filters.Get("id"))
				body, err := json.Marshal(patch)
				require.NoError(t, err)
				assert.NotContains(t, string(body), "created_at")
				assert.Contains(t, string(body), `"nombre":"Ana Maria"`)

				fill(t, out, []map[string]any{restRow("42", "Ana Maria", "Lopez", "X1")})
				return nil
			})

		updated, err := repo.Update(context.Background(), revised(t, "X1"))
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.GivenName())
	})

	t.Run("missing record", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		existing(t, rest)

		_, err := repo.Update(context.Background(), revised(t, "X1"))
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("foreign national id", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		existing(t, rest, restRow("42", "Ana", "Lopez", "X1"))
		expectExists(t, rest, "X2", "42", "99")

		_, err := repo.Update(context.Background(), revised(t, "X2"))
		require.ErrorIs(t, err, models.ErrDuplicateIdentifier)
	})

	t.Run("no row patched", func(t *testing.T) {
		repo, rest := newTestPostgRESTRepo(t)
		existing(t, rest, restRow("42", "Ana", "Lopez", "X1"))
		expectExists(t, rest, "X1", "42")
		rest.EXPECT().
			Update(gomock.Any(), studentsTable, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ url.Values, _ any, out any) error {
				fill(t, out, []map[string]any{})
				return nil
			})

		_, err := repo.Update(context.Background(), revised(t, "X1"))
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPostgRESTDelete(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]any
		want bool
	}{
		{name: "existing", rows: []map[string]any{restRow("42", "Ana", "Lopez", "X1")}, want: true},
		{name: "absent", rows: []map[string]any{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rest := newTestPostgRESTRepo(t)
			rest.EXPECT().
				Delete(gomock.Any(), studentsTable, url.Values{"id": {"eq.42"}}, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
					fill(t, out, tt.rows)
					return nil
				})

			deleted, err := repo.Delete(context.Background(), "42")
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
		})
	}
}
