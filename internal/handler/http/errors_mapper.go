// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-student-registry/models"
)

var errorStatusMap = map[error]int{
	models.ErrValidation:          http.StatusBadRequest,
	models.ErrAuthentication:      http.StatusUnauthorized,
	models.ErrSessionExpired:      http.StatusUnauthorized,
	models.ErrNotFound:            http.StatusNotFound,
	models.ErrDuplicateIdentifier: http.StatusConflict,
	models.ErrStore:               http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
