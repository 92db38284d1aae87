// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the verified claim set of a bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss, ...) and adds the profile claims issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, when the issuer provides it.
	Email string `json:"email,omitempty"`

	// Role assigned by the issuer (e.g. "authenticated").
	Role string `json:"role,omitempty"`
}

// UserID returns the subject of the token, which identifies the user.
func (c Claims) UserID() string {
	return c.Subject
}
