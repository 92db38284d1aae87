// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the service: context keys and
// claim accessors, JWT signing and verification, bearer header parsing,
// JSON response writing, the resty client factory and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

// contextKey is a private type for context keys, preventing collisions with
// keys defined by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the verified claim set of the current
// call is stored in its context.
var ClaimsCtxKey = contextKey("claims")

// ContextWithClaims returns a copy of ctx carrying claims.
func ContextWithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext returns the claim set stored in ctx and whether it
// was present.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// CurrentClaims returns the verified claim set of the current call, or an
// authentication error when the call was not authenticated.
func CurrentClaims(ctx context.Context) (models.Claims, error) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return models.Claims{}, models.NewAuthenticationError("no authenticated user")
	}
	return claims, nil
}

// CurrentUserID returns the subject of the current call's claim set.
func CurrentUserID(ctx context.Context) (string, error) {
	claims, err := CurrentClaims(ctx)
	if err != nil {
		return "", err
	}
	return claims.UserID(), nil
}
