// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the token helpers. Callers match them with errors.Is;
// jwt.ErrTokenExpired and the other jwt sentinels are kept in the chain.
var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrMissingIssuedAt            = errors.New("token has no issued-at claim")
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT token")
)

const bearerScheme = "Bearer"

// NewClaims builds a claim set for subject, issued at now and expiring ttl
// later. issuer may be empty.
func NewClaims(subject, issuer string, now time.Time, ttl time.Duration) models.Claims {
	return models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// GenerateJWTToken signs claims with HMAC-SHA256 and returns the compact
// token string.
func GenerateJWTToken(claims models.Claims, signKey string) (string, error) {
	if signKey == "" || claims.Subject == "" {
		return "", ErrInvalidTokenParams
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// The token must be signed with HS256 using signKey and carry both exp and
// iat. When issuer is not empty the iss claim must match it. now is the
// clock used for time based checks.
//
// An expired token yields an error matching jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.IssuedAt == nil {
		return models.Claims{}, ErrMissingIssuedAt
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
//
// The value must consist of exactly two whitespace-separated parts, the
// first being "Bearer" in any letter case.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
