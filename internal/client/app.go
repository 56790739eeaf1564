// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/tui"
	"github.com/MKhiriev/health-panda/models"
)

type App struct {
	services  *service.ClientServices
	ui        UI
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	out     io.Writer
	stdinFd int
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || cfg == nil {
		return nil, errors.New("client app: services and config are required")
	}

	return &App{
		services:  services,
		ui:        ui,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
		out:       os.Stdout,
		stdinFd:   int(os.Stdin.Fd()),
	}, nil
}

// Run executes the configured command, or the interactive flows when no
// command was given.
func (a *App) Run() error {
	ctx := context.Background()

	if len(a.cfg.Command) > 0 {
		return a.runCommand(ctx, a.cfg.Command)
	}
	return a.runInteractive(ctx)
}

func (a *App) runInteractive(ctx context.Context) error {
	if a.ui == nil {
		return errors.New("client app: no UI configured")
	}

	session := a.services.SessionService
	state := session.Restore(ctx)
	session.Wait()
	a.logger.Info().Str("func", "App.runInteractive").Str("state", state.String()).Msg("session restored")

	notice := ""
	for {
		switch session.State() {
		case models.LoggedOut:
			if err := a.ui.LoginFlow(ctx, notice); err != nil {
				return quitIsNotAnError(err)
			}
			notice = ""
			continue

		case models.LoggedInNoProfile:
			if err := a.ui.OnboardingFlow(ctx); err != nil {
				return quitIsNotAnError(err)
			}
			continue
		}

		a.services.ProfileRefreshJob.Start(ctx, a.cfg.Workers.ProfileRefreshInterval)
		logout, expired, err := a.ui.MainLoop(ctx)
		a.services.ProfileRefreshJob.Stop()

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		if expired {
			a.logger.Info().Str("func", "App.runInteractive").Msg("session expired")
			notice = tui.MsgSessionExpired
		}
	}
}

func quitIsNotAnError(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
