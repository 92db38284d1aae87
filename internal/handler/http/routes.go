// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/health", h.health)
			r.Get("/config", h.clientConfig)
			r.Get("/version", h.getServerVersion)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/alumnos", h.listStudents)
			r.Post("/alumnos", h.createStudent)
			r.Get("/alumnos/dni/{dni}", h.findStudentByNationalID)
			r.Get("/alumnos/{id}", h.getStudent)
			r.Put("/alumnos/{id}", h.updateStudent)
			r.Delete("/alumnos/{id}", h.deleteStudent)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, r, routeNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
