// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=StudentServiceWrapper

// StudentService implements the student use cases. Every error it returns
// belongs to the models error taxonomy.
type StudentService interface {
	CreateStudent(ctx context.Context, request models.StudentRequest) (models.Student, error)
	GetStudent(ctx context.Context, id string) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id string, request models.StudentRequest) (models.Student, error)
	DeleteStudent(ctx context.Context, id string) error

	// FindByNationalID reports a missing record through the boolean result.
	FindByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error)
}

// AuthService verifies bearer credentials.
type AuthService interface {
	// Authenticate verifies the raw Authorization header value and returns
	// the claim set it carries.
	Authenticate(ctx context.Context, authorizationHeader string) (models.Claims, error)

	// CreateToken issues a token for subject that the service itself accepts.
	CreateToken(ctx context.Context, subject string) (string, error)
}

// AppInfoService reports service metadata to clients.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
	ClientConfig(ctx context.Context) models.ClientConfig
}

// StudentServiceWrapper defines middleware composition for StudentService.
// Implementations wrap an existing StudentService to add behavior such as
// metrics or logging.
type StudentServiceWrapper interface {
	Wrap(StudentService) StudentService // returns a decorated StudentService applying additional behavior
}
