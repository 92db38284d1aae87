// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/models"
)

const healthyStatus = "healthy"

type appInfoService struct {
	appVersion   string
	clientConfig models.ClientConfig

	now    func() time.Time
	logger *logger.Logger
}

// NewAppInfoService builds the service from the merged configuration. The
// backend URL and key are published to clients only for the postgrest
// driver, whose key is the public anonymous key.
func NewAppInfoService(cfg config.StructuredConfig, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	clientConfig := models.ClientConfig{SessionTimeout: cfg.App.SessionTimeoutSeconds}
	if cfg.Storage.Driver == config.DriverPostgREST {
		clientConfig.BackendURL = cfg.Storage.URL
		clientConfig.BackendKey = cfg.Storage.Key
	}

	return &appInfoService{
		appVersion:   cfg.App.Version,
		clientConfig: clientConfig,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    healthyStatus,
		Timestamp: s.now().UTC(),
		Version:   s.appVersion,
	}
}

func (s *appInfoService) ClientConfig(ctx context.Context) models.ClientConfig {
	return s.clientConfig
}
