// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStudent(t *testing.T, given, family, nationalID string) models.Student {
	t.Helper()
	s, err := models.NewStudent(given, family, nationalID)
	require.NoError(t, err)
	return s
}

// runStudentRepositoryContract exercises the behaviour every
// [StudentRepository] must share. newRepo must return an empty repository.
func runStudentRepositoryContract(t *testing.T, newRepo func(t *testing.T) StudentRepository) {
	ctx := context.Background()

	t.Run("create assigns id and keeps normalized values", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, mustStudent(t, " juan ", " perez ", "abc123"))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID())
		assert.False(t, created.IsNew())
		assert.Equal(t, "Juan", created.GivenName())
		assert.Equal(t, "Perez", created.FamilyName())
		assert.Equal(t, "ABC123", created.NationalID())

		got, found, err := repo.GetByID(ctx, created.ID())
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, got.Equal(created))
		assert.Equal(t, "ABC123", got.NationalID())
	})

	t.Run("duplicate national id is rejected", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx, mustStudent(t, "Ana", "Lopez", "12345678"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, mustStudent(t, "Otra", "Persona", "  12345678  "))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrDuplicateIdentifier)

		var dupErr *models.DuplicateIdentifierError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "12345678", dupErr.Value)
	})

	t.Run("lookups report absence without error", func(t *testing.T) {
		repo := newRepo(t)

		_, found, err := repo.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = repo.GetByNationalID(ctx, "NOPE")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("get by national id normalizes the key", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, mustStudent(t, "Ana", "Lopez", "xy99"))
		require.NoError(t, err)

		got, found, err := repo.GetByNationalID(ctx, " xy99 ")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, created.ID(), got.ID())
	})

	t.Run("list orders by family then given name", func(t *testing.T) {
		repo := newRepo(t)

		students, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, students)

		for i, family := range []string{"Zapata", "Alvarez", "Martinez"} {
			_, err = repo.Create(ctx, mustStudent(t, "Luis", family, "ID"+string(rune('A'+i))))
			require.NoError(t, err)
		}
		_, err = repo.Create(ctx, mustStudent(t, "Ana", "Martinez", "IDZ"))
		require.NoError(t, err)

		students, err = repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, students, 4)

		names := make([]string, 0, len(students))
		for _, s := range students {
			names = append(names, s.FullName())
		}
		assert.Equal(t, []string{"Luis Alvarez", "Ana Martinez", "Luis Martinez", "Luis Zapata"}, names)
	})

	t.Run("update keeps own national id and rejects a foreign one", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Create(ctx, mustStudent(t, "Ana", "Lopez", "111"))
		require.NoError(t, err)
		second, err := repo.Create(ctx, mustStudent(t, "Luis", "Diaz", "222"))
		require.NoError(t, err)

		revised, err := first.Revise("Ana Maria", "Lopez", "111")
		require.NoError(t, err)
		updated, err := repo.Update(ctx, revised)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.GivenName())
		assert.Equal(t, first.ID(), updated.ID())

		clash, err := second.Revise("Luis", "Diaz", "111")
		require.NoError(t, err)
		_, err = repo.Update(ctx, clash)
		assert.ErrorIs(t, err, models.ErrDuplicateIdentifier)

		got, found, err := repo.GetByID(ctx, second.ID())
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "222", got.NationalID())
	})

	t.Run("update of a missing record is not found", func(t *testing.T) {
		repo := newRepo(t)

		ghost, err := models.NewStudent("Ana", "Lopez", "333", models.WithID("does-not-exist"))
		require.NoError(t, err)

		_, err = repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, mustStudent(t, "Ana", "Lopez", "444"))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID())
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, created.ID())
		require.NoError(t, err)
		assert.False(t, deleted)

		_, found, err := repo.GetByID(ctx, created.ID())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("national id exists honours exclusion", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, mustStudent(t, "Ana", "Lopez", "555"))
		require.NoError(t, err)

		exists, err := repo.NationalIDExists(ctx, "555", "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.NationalIDExists(ctx, "555", created.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.NationalIDExists(ctx, "666", "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("concurrent creates keep national id unique", func(t *testing.T) {
		repo := newRepo(t)

		student := mustStudent(t, "Ana", "Lopez", "RACE1")

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Create(ctx, student)
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, models.ErrDuplicateIdentifier)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
	})
}
