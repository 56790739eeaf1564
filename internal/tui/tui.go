// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive flows of the client. Each flow is a separate
// Bubble Tea program; the caller picks the next one from the session state.
type TUI struct {
	session   service.ClientSessionService
	food      service.ClientFoodService
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// run executes a program and returns its final model.
	run func(model tea.Model) (tea.Model, error)
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		session:   services.SessionService,
		food:      services.FoodService,
		validator: validators.NewProfileValidator(),
		buildInfo: buildInfo,
		logger:    logger,
		run:       runProgram,
	}, nil
}

// LoginFlow shows the menu with the login and registration forms and
// returns once the user is signed in. notice, if set, is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session, t.validator),
	}
	if notice != "" {
		pages[pageMenu].Update(SignedOutNotice{Reason: notice})
	}

	return t.runFlow(NewRootModel(pages, pageMenu, t.buildInfo))
}

// OnboardingFlow asks for the profile and returns once it is saved.
func (t *TUI) OnboardingFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageOnboarding: NewOnboardingModel(ctx, t.session, t.validator),
	}

	return t.runFlow(NewRootModel(pages, pageOnboarding, t.buildInfo))
}

// MainLoop runs the home screen. logout is true when the session ended
// while it was open; expired tells a rejected token apart from a logout.
func (t *TUI) MainLoop(ctx context.Context) (logout, expired bool, err error) {
	finalModel, err := t.run(NewHomeModel(ctx, t.session, t.food))
	if err != nil {
		return false, false, err
	}

	result, ok := finalModel.(*HomeModel)
	if !ok {
		return false, false, tea.ErrProgramKilled
	}
	return result.Logout(), result.Expired(), nil
}

func (t *TUI) runFlow(root RootModel) error {
	finalModel, err := t.run(root)
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.completed {
		t.logger.Info().Str("func", "TUI.runFlow").Msg("user left the flow")
		return ErrUserQuit
	}
	return nil
}

func runProgram(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}
