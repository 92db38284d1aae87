// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations accept Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey          string `json:"token_sign_key"`
		TokenIssuer           string `json:"token_issuer"`
		SessionTimeoutSeconds int    `json:"session_timeout_seconds"`
		Version               string `json:"version"`
		LogLevel              string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver         string   `json:"driver"`
		URL            string   `json:"url"`
		Key            string   `json:"key"`
		Table          string   `json:"table"`
		Database       string   `json:"database"`
		Migrate        bool     `json:"migrate"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:          jsonCfg.App.TokenSignKey,
			TokenIssuer:           jsonCfg.App.TokenIssuer,
			SessionTimeoutSeconds: jsonCfg.App.SessionTimeoutSeconds,
			Version:               jsonCfg.App.Version,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver:         jsonCfg.Storage.Driver,
			URL:            jsonCfg.Storage.URL,
			Key:            jsonCfg.Storage.Key,
			Table:          jsonCfg.Storage.Table,
			Database:       jsonCfg.Storage.Database,
			Migrate:        jsonCfg.Storage.Migrate,
			RequestTimeout: time.Duration(jsonCfg.Storage.RequestTimeout),
		},
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}, nil
}

// Duration is a time.Duration decoded from either a duration string or a
// number of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
