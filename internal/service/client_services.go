// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/health-panda/internal/adapter"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/validators"
)

type ClientServices struct {
	SessionService    ClientSessionService
	FoodService       ClientFoodService
	ProfileRefreshJob ProfileRefreshJob
}

// NewClientServices wires the client services. nutrition may be nil.
func NewClientServices(serverAdapter adapter.ServerAdapter, nutrition adapter.NutritionAdapter, creds CredentialStore, demoMode bool, logger *logger.Logger) *ClientServices {
	session := NewClientSessionService(serverAdapter, creds, validators.NewProfileValidator(), logger)

	return &ClientServices{
		SessionService:    session,
		FoodService:       NewClientFoodService(serverAdapter, nutrition, demoMode, logger),
		ProfileRefreshJob: NewProfileRefreshJob(session, logger),
	}
}
