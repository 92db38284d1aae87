// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenDuration = 15 * time.Minute

// authService verifies HS256 bearer tokens signed with a shared secret.
// All state is read-only after construction.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify (and, for CreateToken,
	// sign) tokens.
	tokenSignKey string

	// tokenIssuer, when set, must match the iss claim.
	tokenIssuer string

	// tokenDuration is the lifetime of tokens issued by CreateToken.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the token settings in cfg.
// Issued tokens live for the configured session timeout.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	duration := time.Duration(cfg.SessionTimeoutSeconds) * time.Second
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: duration,
		now:           time.Now,
		logger:        logger,
	}
}

// Authenticate runs the verification steps in order: header presence,
// bearer scheme, signature and structure, then an explicit expiry check.
//
// An expired token always yields [*models.SessionExpiredError]; every other
// rejection is an [*models.AuthenticationError].
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.Claims, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Claims{}, models.NewAuthenticationError("token required")
	}

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.Claims{}, models.NewAuthenticationError("invalid token format")
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Msg("expired token presented")
			return models.Claims{}, models.NewSessionExpiredError()
		}
		log.Debug().Err(err).Msg("token rejected")
		return models.Claims{}, models.NewAuthenticationError("invalid token: " + tokenErrorDetail(err))
	}

	// checked again independently of the parser
	if claims.ExpiresAt == nil {
		return models.Claims{}, models.NewAuthenticationError("invalid token: missing expiration")
	}
	if !a.now().Before(claims.ExpiresAt.Time) {
		return models.Claims{}, models.NewSessionExpiredError()
	}

	return claims, nil
}

func (a *authService) CreateToken(ctx context.Context, subject string) (string, error) {
	claims := utils.NewClaims(subject, a.tokenIssuer, a.now(), a.tokenDuration)

	token, err := utils.GenerateJWTToken(claims, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token creation failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// tokenErrorDetail strips the helper's wrapping and returns the parser's
// own description of the failure.
func tokenErrorDetail(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}
