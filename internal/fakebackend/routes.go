// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns the router serving the backend contract under /api.
func (b *Backend) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, b.withRequestID, b.withLogging)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", b.register)
			r.Post("/login", b.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(b.auth)

			r.Get("/profile", b.getProfile)
			r.Post("/profile", b.updateProfile)
			r.Get("/food", b.listFood)
			r.Post("/food", b.scanFood)
		})
	})

	return router
}
