// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// MarshalJSON renders the timestamp in UTC with [TimestampLayout], the same
// form record timestamps use.
func (h HealthStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Version   string `json:"version"`
	}{
		Status:    h.Status,
		Timestamp: h.Timestamp.UTC().Format(TimestampLayout),
		Version:   h.Version,
	})
}

// ClientConfig is the public configuration handed to browser clients.
//
// BackendURL and BackendKey are the hosted backend's public endpoint and
// anonymous key; both are empty when the service runs on a backend that
// clients cannot reach directly. The token signing secret is never part of
// this struct.
type ClientConfig struct {
	BackendURL     string `json:"supabase_url"`
	BackendKey     string `json:"supabase_key"`
	SessionTimeout int    `json:"session_timeout"`
}
