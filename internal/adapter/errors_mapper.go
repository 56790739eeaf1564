// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/health-panda/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Err = ErrForbidden
	case http.StatusNotFound:
		respErr.Err = ErrNotFound
	case http.StatusConflict:
		respErr.Err = ErrConflict
	case http.StatusBadGateway:
		respErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.Err = ErrInternalServerError
	default:
		respErr.Err = ErrUnexpectedStatus
	}

	return respErr
}

// extractMessage reads the "message" or "error" field of a JSON error body.
// Plain-text bodies are not shown to the user.
func extractMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return strings.TrimSpace(errResp.Text())
}

// mapTransportError classifies an error returned by resty before any
// response was received.
func mapTransportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}

func decodeJSON(resp *resty.Response, op string, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", op, ErrInvalidResponse, err)
	}
	return nil
}
