// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line arguments into a partial config.
//
// Flags:
//
//	-driver storage driver (postgrest, postgres, sqlite, mongo, memory)
//	-d storage URL (PostgREST base URL, SQL DSN or Mongo URI)
//	-k storage access key
//	-migrate apply SQL migrations on start
//	-s token signing key
//	-token-issuer expected token issuer
//	-host listen host
//	-p listen port
//	-t request timeout (e.g. "30s")
//	-log-level log level
//	-c/-config JSON config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("student-registry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver")
	fs.StringVar(&cfg.Storage.URL, "d", "", "Storage URL")
	fs.StringVar(&cfg.Storage.Key, "k", "", "Storage access key")
	fs.BoolVar(&cfg.Storage.Migrate, "migrate", false, "Apply SQL migrations on start")
	fs.StringVar(&cfg.App.TokenSignKey, "s", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Server.Host, "host", "", "Listen host")
	fs.IntVar(&cfg.Server.Port, "p", 0, "Listen port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "t", 0, "Request timeout (e.g. 30s, 1m)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
