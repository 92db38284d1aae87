// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: models.NewValidationError(models.FieldGivenName, "given name is required"), want: http.StatusBadRequest},
		{name: "not found", err: models.NewNotFoundError("1"), want: http.StatusNotFound},
		{name: "duplicate", err: models.NewDuplicateIdentifierError("1"), want: http.StatusConflict},
		{name: "authentication", err: models.NewAuthenticationError("token required"), want: http.StatusUnauthorized},
		{name: "session expired", err: models.NewSessionExpiredError(), want: http.StatusUnauthorized},
		{name: "store", err: models.NewStoreError("list", errors.New("down")), want: http.StatusInternalServerError},
		{name: "wrapped domain error", err: fmt.Errorf("update: %w", models.NewNotFoundError("1")), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
