// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	restPathPrefix        = "/rest/v1/"
	preferHeader          = "Prefer"
	returnRepresentation  = "return=representation"
	apiKeyHeader          = "apikey"
	contentTypeHeader     = "Content-Type"
	contentTypeJSONHeader = "application/json"
)

type postgrestAdapter struct {
	baseURL string
	key     string
	timeout time.Duration

	// client is created on first use. mu serialises creation so that
	// concurrent first calls build exactly one client.
	mu        sync.Mutex
	client    atomic.Pointer[utils.HTTPClient]
	newClient func(baseURL string, timeout time.Duration) *utils.HTTPClient

	logger *logger.Logger
}

// NewPostgRESTAdapter returns a [RESTAdapter] for the PostgREST endpoint at
// cfg.URL authenticated with cfg.Key. The underlying HTTP client is created
// lazily on the first request.
func NewPostgRESTAdapter(cfg config.Storage, logger *logger.Logger) (RESTAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating postgrest adapter")

	return &postgrestAdapter{
		baseURL:   baseURL,
		key:       cfg.Key,
		timeout:   cfg.RequestTimeout,
		newClient: utils.NewHTTPClient,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// restClient returns the shared client, creating it on first use.
func (a *postgrestAdapter) restClient() *utils.HTTPClient {
	if c := a.client.Load(); c != nil {
		return c
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if c := a.client.Load(); c != nil {
		return c
	}

	c := a.newClient(a.baseURL, a.timeout)
	c.SetHeader(apiKeyHeader, a.key).
		SetAuthToken(a.key)
	a.client.Store(c)
	a.logger.Debug().Msg("postgrest client initialised")

	return c
}

func (a *postgrestAdapter) request(ctx context.Context, filters url.Values) *resty.Request {
	req := a.restClient().R().SetContext(ctx)
	if len(filters) > 0 {
		req.SetQueryParamsFromValues(filters)
	}
	return req
}

func (a *postgrestAdapter) Select(ctx context.Context, table string, filters url.Values, out any) error {
	req := a.request(ctx, filters)
	if out != nil {
		req.SetResult(out)
	}

	return a.do(req, http.MethodGet, table)
}

func (a *postgrestAdapter) Insert(ctx context.Context, table string, row any, out any) error {
	req := a.request(ctx, nil).
		SetHeader(contentTypeHeader, contentTypeJSONHeader).
		SetHeader(preferHeader, returnRepresentation).
		SetBody(row)
	if out != nil {
		req.SetResult(out)
	}

	return a.do(req, http.MethodPost, table)
}

func (a *postgrestAdapter) Update(ctx context.Context, table string, filters url.Values, patch any, out any) error {
	req := a.request(ctx, filters).
		SetHeader(contentTypeHeader, contentTypeJSONHeader).
		SetHeader(preferHeader, returnRepresentation).
		SetBody(patch)
	if out != nil {
		req.SetResult(out)
	}

	return a.do(req, http.MethodPatch, table)
}

func (a *postgrestAdapter) Delete(ctx context.Context, table string, filters url.Values, out any) error {
	req := a.request(ctx, filters).
		SetHeader(preferHeader, returnRepresentation)
	if out != nil {
		req.SetResult(out)
	}

	return a.do(req, http.MethodDelete, table)
}

func (a *postgrestAdapter) do(req *resty.Request, method, table string) error {
	resp, err := req.Execute(method, restPathPrefix+table)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, table, err)
	}

	return mapHTTPError(resp)
}
