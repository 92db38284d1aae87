// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
)

// Storages groups the repositories handed to the service layer together
// with the backend handles they own.
type Storages struct {
	StudentRepository StudentRepository

	closers []func(context.Context) error
}

// NewStorages connects the backend selected by cfg.Driver and returns the
// repositories built on it. For SQL drivers the schema is migrated first
// when cfg.Migrate is set.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverMemory:
		return &Storages{StudentRepository: NewMemoryStudentRepository(logger)}, nil

	case config.DriverPostgREST:
		rest, err := adapter.NewPostgRESTAdapter(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{StudentRepository: NewPostgRESTStudentRepository(rest, cfg.Table, logger)}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}
		if cfg.Migrate {
			if err = db.Migrate(); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migration failed: %w", err)
			}
		}

		return &Storages{
			StudentRepository: NewSQLStudentRepository(db, logger),
			closers:           []func(context.Context) error{func(context.Context) error { return db.Close() }},
		}, nil

	case config.DriverMongo:
		client, err := NewConnectMongo(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		repo, err := NewMongoStudentRepository(ctx, client.Database(cfg.Database).Collection(cfg.Table), logger)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}

		return &Storages{
			StudentRepository: repo,
			closers:           []func(context.Context) error{client.Disconnect},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

// Close releases the backend handles. It is safe to call on storages that
// own none.
func (s *Storages) Close(ctx context.Context) error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
