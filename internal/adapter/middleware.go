// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/health-panda/internal/logger"
)

// RequestIDHeader carries the client-generated correlation id.
const RequestIDHeader = "X-Request-ID"

// attachCredentials runs before every request. It tags the request with a
// correlation id and, when a token is available, the bearer header. Without
// a token the request goes out unauthenticated.
func (h *httpServerAdapter) attachCredentials(_ *resty.Client, req *resty.Request) error {
	requestID := h.ids.Generate()
	req.SetHeader(RequestIDHeader, requestID)

	if token := h.creds.AccessToken(); token != "" {
		req.SetAuthToken(token)
	}

	log := h.logger.WithRequestID(requestID)
	req.SetContext(log.WithContext(req.Context()))

	return nil
}

// revokeOnUnauthorized runs after every response. A 401 means the stored
// token is no longer accepted: credentials are revoked and the response is
// still returned to the caller, which maps it to ErrUnauthorized.
func (h *httpServerAdapter) revokeOnUnauthorized(_ *resty.Client, resp *resty.Response) error {
	log := logger.FromContext(resp.Request.Context())
	log.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("backend response")

	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	log.Warn().Str("url", resp.Request.URL).Msg("backend rejected credentials, logging out")
	if err := h.creds.Revoke(resp.Request.Context()); err != nil {
		log.Err(err).Msg("failed to revoke credentials after 401")
	}

	return nil
}
