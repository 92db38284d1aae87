// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/metrics"
	"github.com/MKhiriev/go-student-registry/models"
)

// StudentMetricsService records the duration and outcome of every use case.
type StudentMetricsService struct {
	inner   StudentService
	metrics *metrics.Metrics
}

func NewStudentMetricsService(m *metrics.Metrics) StudentServiceWrapper {
	return &StudentMetricsService{metrics: m}
}

func (s *StudentMetricsService) Wrap(inner StudentService) StudentService {
	s.inner = inner
	return s
}

func (s *StudentMetricsService) CreateStudent(ctx context.Context, request models.StudentRequest) (student models.Student, err error) {
	defer s.observe(opCreate, time.Now(), &err)
	return s.inner.CreateStudent(ctx, request)
}

func (s *StudentMetricsService) GetStudent(ctx context.Context, id string) (student models.Student, err error) {
	defer s.observe("get", time.Now(), &err)
	return s.inner.GetStudent(ctx, id)
}

func (s *StudentMetricsService) ListStudents(ctx context.Context) (students []models.Student, err error) {
	defer s.observe(opList, time.Now(), &err)
	return s.inner.ListStudents(ctx)
}

func (s *StudentMetricsService) UpdateStudent(ctx context.Context, id string, request models.StudentRequest) (student models.Student, err error) {
	defer s.observe(opUpdate, time.Now(), &err)
	return s.inner.UpdateStudent(ctx, id, request)
}

func (s *StudentMetricsService) DeleteStudent(ctx context.Context, id string) (err error) {
	defer s.observe(opDelete, time.Now(), &err)
	return s.inner.DeleteStudent(ctx, id)
}

func (s *StudentMetricsService) FindByNationalID(ctx context.Context, nationalID string) (student models.Student, found bool, err error) {
	defer s.observe("find_by_dni", time.Now(), &err)
	return s.inner.FindByNationalID(ctx, nationalID)
}

func (s *StudentMetricsService) observe(operation string, start time.Time, err *error) {
	s.metrics.ObserveOperation(operation, start, *err)
}
