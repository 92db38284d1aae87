// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// uniqueViolationCode is the SQLSTATE PostgREST forwards for a unique
// constraint rejection.
const uniqueViolationCode = "23505"

// restError is the error body returned by PostgREST.
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var restErr restError
	if err := json.Unmarshal(resp.Body(), &restErr); err == nil && restErr.Message != "" {
		body = restErr.Message
		if restErr.Details != "" {
			body += ": " + restErr.Details
		}
	}

	if isUniqueViolation(restErr.Code, body) {
		return fmt.Errorf("%w: %w: %s", ErrConflict, ErrUniqueViolation, body)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

func isUniqueViolation(code, message string) bool {
	if code == uniqueViolationCode {
		return true
	}
	message = strings.ToLower(message)
	return strings.Contains(message, "duplicate key") || strings.Contains(message, "unique")
}
