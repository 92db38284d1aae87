// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Storage drivers accepted in [Storage.Driver].
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"
)

// Defaults applied to fields left empty by every source.
const (
	defaultDriver                = DriverPostgREST
	defaultTable                 = "alumnos"
	defaultDatabase              = "alumnos"
	defaultStorageRequestTimeout = 10 * time.Second
	defaultSessionTimeoutSeconds = 900
	defaultVersion               = "1.0.0"
	defaultLogLevel              = "info"
	defaultHost                  = "0.0.0.0"
	defaultPort                  = 5000
	defaultServerRequestTimeout  = 30 * time.Second
)

const redacted = "****"

// StructuredConfig is the top-level configuration of the service.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds token verification and client-facing settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path of a JSON config file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the shared HS256 secret bearer tokens are signed with.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required"`

	// TokenIssuer, when set, must match the iss claim of every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionTimeoutSeconds is the inactivity timeout advertised to clients.
	// Env: APP_SESSION_TIMEOUT_SECONDS
	SessionTimeoutSeconds int `env:"SESSION_TIMEOUT_SECONDS" validate:"gte=0"`

	// Version is reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Storage configures the persistence backend.
type Storage struct {
	// Driver selects the backend implementation.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER" validate:"oneof=postgrest postgres sqlite mongo memory"`

	// URL is the backend location: PostgREST base URL, SQL DSN or Mongo URI.
	// Env: STORAGE_URL
	URL string `env:"URL" validate:"required_unless=Driver memory"`

	// Key is the access key of the hosted backend.
	// Env: STORAGE_KEY
	Key string `env:"KEY" validate:"required_if=Driver postgrest"`

	// Table is the PostgREST table or Mongo collection name.
	// Env: STORAGE_TABLE
	Table string `env:"TABLE"`

	// Database is the Mongo database name.
	// Env: STORAGE_DATABASE
	Database string `env:"DATABASE"`

	// Migrate applies the embedded SQL migrations on start.
	// Env: STORAGE_MIGRATE
	Migrate bool `env:"MIGRATE"`

	// RequestTimeout bounds every call to a remote backend.
	// Env: STORAGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the settings of the HTTP transport.
type Server struct {
	// Host is the listen host.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the listen port.
	// Env: SERVER_PORT
	Port int `env:"PORT" validate:"gte=1,lte=65535"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Address returns the listen address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads the configuration from the environment, the
// process command line and the optional JSON file, applies defaults and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultDriver
	}
	if cfg.Storage.Table == "" {
		cfg.Storage.Table = defaultTable
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = defaultDatabase
	}
	if cfg.Storage.RequestTimeout == 0 {
		cfg.Storage.RequestTimeout = defaultStorageRequestTimeout
	}
	if cfg.App.SessionTimeoutSeconds == 0 {
		cfg.App.SessionTimeoutSeconds = defaultSessionTimeoutSeconds
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerRequestTimeout
	}
}

// Redacted returns a copy of the configuration safe to log: secrets are
// masked and a password embedded in the storage URL is hidden.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = redacted
	}
	if cfg.Storage.Key != "" {
		cfg.Storage.Key = redacted
	}
	if u, err := url.Parse(cfg.Storage.URL); err == nil && u.User != nil {
		cfg.Storage.URL = u.Redacted()
	}
	return cfg
}
