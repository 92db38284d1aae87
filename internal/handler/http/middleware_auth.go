// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/rs/zerolog"
)

// auth is the request gate of every student route.
//
// The raw "Authorization" header is handed to [service.AuthService]; a
// rejected credential ends the request with 401 and the error body
// (AUTH_ERROR or SESSION_EXPIRED). On success the verified claim set is
// attached to the request context, where handlers read it with
// [utils.CurrentClaims], and the request logger gains a user_id field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		claims, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			if h.metrics != nil {
				h.metrics.IncrementAuthFailure(err)
			}
			log.Warn().Err(err).Str("uri", r.RequestURI).Msg("request rejected by auth")
			h.writeError(w, r, err)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", claims.UserID())
		})

		ctx = utils.ContextWithClaims(ctx, claims)
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
