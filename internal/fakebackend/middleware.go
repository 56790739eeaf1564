// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

type ctxKey string

const emailCtxKey ctxKey = "email"

// withRequestID attaches a child logger tagged with the caller's request id
// to the request context and echoes the id back. Missing or malformed ids
// are replaced with a fresh one.
func (b *Backend) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if !utils.ValidRequestID(requestID) {
			requestID = b.ids.Generate()
		}

		l := b.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(logger.RequestIDField, requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// auth rejects requests without a valid bearer token and stores the token
// subject (the account email) in the request context.
func (b *Backend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			_, _ = utils.WriteMessage(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		email, err := utils.ValidateJWTToken(tokenString, b.currentSignKey(), tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			_, _ = utils.WriteMessage(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), emailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from an
// "Authorization: Bearer <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

func emailFromRequest(r *http.Request) string {
	email, _ := r.Context().Value(emailCtxKey).(string)
	return email
}

// responseWriter records the status code and body size for access logs.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
