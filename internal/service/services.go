// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/metrics"
	"github.com/MKhiriev/go-student-registry/internal/store"
)

type Services struct {
	AuthService    AuthService
	StudentService StudentService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. When m is not nil the
// student service is wrapped to record metrics.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	studentService := NewStudentService(storages.StudentRepository, logger)
	if m != nil {
		studentService = NewStudentMetricsService(m).Wrap(studentService)
	}

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		StudentService: studentService,
		AppInfoService: appInfoService,
	}, nil
}
