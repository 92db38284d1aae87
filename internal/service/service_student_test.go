// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/mock"
	"github.com/MKhiriev/go-student-registry/internal/store"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryStudentService() StudentService {
	return NewStudentService(store.NewMemoryStudentRepository(logger.Nop()), logger.Nop())
}

func request(given, family, nationalID string) models.StudentRequest {
	return models.StudentRequest{GivenName: given, FamilyName: family, NationalID: nationalID}
}

// ── use cases against the in-memory repository ──────────────────────────────

func TestCreateStudent_NormalizesFields(t *testing.T) {
	svc := newMemoryStudentService()

	created, err := svc.CreateStudent(context.Background(), request(" juan ", " perez ", "abc123"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID())
	assert.Equal(t, "Juan", created.GivenName())
	assert.Equal(t, "Perez", created.FamilyName())
	assert.Equal(t, "ABC123", created.NationalID())
}

func TestCreateStudent_ValidationNamesField(t *testing.T) {
	tests := []struct {
		name      string
		req       models.StudentRequest
		wantField string
	}{
		{name: "empty given name", req: request("", "Perez", "1"), wantField: models.FieldGivenName},
		{name: "blank family name", req: request("Juan", "   ", "1"), wantField: models.FieldFamilyName},
		{name: "blank national id", req: request("Juan", "Perez", " \t "), wantField: models.FieldNationalID},
		{name: "first failure wins", req: request("", "", ""), wantField: models.FieldGivenName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMemoryStudentService().CreateStudent(context.Background(), tt.req)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCreateStudent_DuplicateNationalID(t *testing.T) {
	svc := newMemoryStudentService()
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "12345678"))
	require.NoError(t, err)

	_, err = svc.CreateStudent(ctx, request("Eva", "Diaz", "  12345678  "))
	require.ErrorIs(t, err, models.ErrDuplicateIdentifier)
}

func TestGetStudent_NotFound(t *testing.T) {
	_, err := newMemoryStudentService().GetStudent(context.Background(), "missing")

	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestListStudents_Ordered(t *testing.T) {
	svc := newMemoryStudentService()
	ctx := context.Background()

	for i, family := range []string{"Zapata", "Alvarez", "Martinez"} {
		_, err := svc.CreateStudent(ctx, request("Luis", family, string(rune('A'+i))))
		require.NoError(t, err)
	}

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Alvarez", students[0].FamilyName())
	assert.Equal(t, "Martinez", students[1].FamilyName())
	assert.Equal(t, "Zapata", students[2].FamilyName())
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("own national id is allowed", func(t *testing.T) {
		svc := newMemoryStudentService()
		created, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "111"))
		require.NoError(t, err)

		updated, err := svc.UpdateStudent(ctx, created.ID(), request("ana maria", "lopez", "111"))
		require.NoError(t, err)

		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, "Ana Maria", updated.GivenName())
		assert.True(t, updated.CreatedAt().Equal(created.CreatedAt()))
		assert.False(t, updated.UpdatedAt().Before(created.UpdatedAt()))
	})

	t.Run("national id of another record", func(t *testing.T) {
		svc := newMemoryStudentService()
		_, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "111"))
		require.NoError(t, err)
		other, err := svc.CreateStudent(ctx, request("Luis", "Diaz", "222"))
		require.NoError(t, err)

		_, err = svc.UpdateStudent(ctx, other.ID(), request("Luis", "Diaz", "111"))
		require.ErrorIs(t, err, models.ErrDuplicateIdentifier)
	})

	t.Run("missing record is reported before validation", func(t *testing.T) {
		svc := newMemoryStudentService()

		_, err := svc.UpdateStudent(ctx, "missing", request("", "", ""))
		require.ErrorIs(t, err, models.ErrNotFound)
		assert.NotErrorIs(t, err, models.ErrValidation)
	})

	t.Run("invalid request on existing record", func(t *testing.T) {
		svc := newMemoryStudentService()
		created, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "111"))
		require.NoError(t, err)

		_, err = svc.UpdateStudent(ctx, created.ID(), request("Ana", "", "111"))
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, models.FieldFamilyName, validationErr.Field)
	})
}

func TestDeleteStudent(t *testing.T) {
	svc := newMemoryStudentService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "111"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID()))

	_, err = svc.GetStudent(ctx, created.ID())
	require.ErrorIs(t, err, models.ErrNotFound)

	err = svc.DeleteStudent(ctx, created.ID())
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindByNationalID(t *testing.T) {
	svc := newMemoryStudentService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "ab12"))
	require.NoError(t, err)

	found, ok, err := svc.FindByNationalID(ctx, "AB12")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, found.Equal(created))

	_, ok, err = svc.FindByNationalID(ctx, "ZZ99")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── error translation with a mocked repository ──────────────────────────────

func newMockedStudentService(t *testing.T) (StudentService, *mock.MockStudentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStudentRepository(ctrl)
	return NewStudentService(repo, logger.Nop()), repo
}

func TestStudentService_WrapsForeignErrorsAsStoreError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("create", func(t *testing.T) {
		svc, repo := newMockedStudentService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Student{}, boom)

		_, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "1"))

		var storeErr *models.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "create", storeErr.Op)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("get", func(t *testing.T) {
		svc, repo := newMockedStudentService(t)
		repo.EXPECT().GetByID(ctx, "1").Return(models.Student{}, false, boom)

		_, err := svc.GetStudent(ctx, "1")
		require.ErrorIs(t, err, models.ErrStore)
	})

	t.Run("list", func(t *testing.T) {
		svc, repo := newMockedStudentService(t)
		repo.EXPECT().List(ctx).Return(nil, boom)

		_, err := svc.ListStudents(ctx)
		require.ErrorIs(t, err, models.ErrStore)
	})

	t.Run("find by national id", func(t *testing.T) {
		svc, repo := newMockedStudentService(t)
		repo.EXPECT().GetByNationalID(ctx, "X").Return(models.Student{}, false, boom)

		_, _, err := svc.FindByNationalID(ctx, "X")
		require.ErrorIs(t, err, models.ErrStore)
	})
}

func TestStudentService_PassesDomainErrorsThrough(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMockedStudentService(t)

	dup := models.NewDuplicateIdentifierError("1")
	repo.EXPECT().Create(ctx, gomock.Any()).Return(models.Student{}, dup)

	_, err := svc.CreateStudent(ctx, request("Ana", "Lopez", "1"))
	require.Same(t, dup, err)
}

func TestUpdateStudent_SkipsRepositoryWriteOnValidationFailure(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMockedStudentService(t)

	existing, err := models.NewStudent("Ana", "Lopez", "1", models.WithID("id-1"))
	require.NoError(t, err)

	repo.EXPECT().GetByID(ctx, "id-1").Return(existing, true, nil)
	// no Update expected

	_, err = svc.UpdateStudent(ctx, "id-1", request("Ana", "Lopez", ""))
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateStudent_KeepsCreationTime(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMockedStudentService(t)

	existing, err := models.NewStudent("Ana", "Lopez", "1", models.WithID("id-1"))
	require.NoError(t, err)

	repo.EXPECT().GetByID(ctx, "id-1").Return(existing, true, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Student) (models.Student, error) {
		assert.Equal(t, "id-1", s.ID())
		assert.True(t, s.CreatedAt().Equal(existing.CreatedAt()))
		assert.Equal(t, "Eva", s.GivenName())
		return s, nil
	})

	_, err = svc.UpdateStudent(ctx, "id-1", request("eva", "Lopez", "1"))
	require.NoError(t, err)
}

func TestDeleteStudent_RaceReportsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMockedStudentService(t)

	existing, err := models.NewStudent("Ana", "Lopez", "1", models.WithID("id-1"))
	require.NoError(t, err)

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, "id-1").Return(existing, true, nil),
		repo.EXPECT().Delete(ctx, "id-1").Return(false, nil),
	)

	err = svc.DeleteStudent(ctx, "id-1")
	require.ErrorIs(t, err, models.ErrNotFound)
}
