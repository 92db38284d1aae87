// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/go-chi/chi/v5"
)

var routeNotFound = models.ErrorResponse{Error: "route not found", Code: models.CodeNotFound}

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's bare 405 it answers 404 when the router has no handler
// for the method and path, so unsupported methods do not reveal which paths
// exist. Requests the router can serve are passed back to it.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteJSON(w, routeNotFound, http.StatusNotFound)
	}
}
