// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/mock"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/tui"
	"github.com/MKhiriev/health-panda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedUI plays a fixed sequence of flows. Each flow hook may change the
// session state the app reads next.
type scriptedUI struct {
	calls      []string
	notices    []string
	login      func() error
	onboarding func() error
	mainLoop   func() (bool, bool, error)
}

func (u *scriptedUI) LoginFlow(_ context.Context, notice string) error {
	u.calls = append(u.calls, "login")
	u.notices = append(u.notices, notice)
	return u.login()
}

func (u *scriptedUI) OnboardingFlow(context.Context) error {
	u.calls = append(u.calls, "onboarding")
	return u.onboarding()
}

func (u *scriptedUI) MainLoop(context.Context) (bool, bool, error) {
	u.calls = append(u.calls, "home")
	return u.mainLoop()
}

type appDeps struct {
	session *mock.MockClientSessionService
	food    *mock.MockClientFoodService
	job     *mock.MockProfileRefreshJob
	out     *bytes.Buffer
}

func newTestApp(t *testing.T, ui UI, command ...string) (*App, appDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := appDeps{
		session: mock.NewMockClientSessionService(ctrl),
		food:    mock.NewMockClientFoodService(ctrl),
		job:     mock.NewMockProfileRefreshJob(ctrl),
		out:     &bytes.Buffer{},
	}

	cfg := &config.ClientConfig{
		Workers: config.ClientWorkers{ProfileRefreshInterval: time.Minute},
		Command: command,
	}
	services := &service.ClientServices{SessionService: deps.session, FoodService: deps.food, ProfileRefreshJob: deps.job}

	a, err := NewApp(services, ui, cfg, models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"), logger.Nop())
	require.NoError(t, err)
	a.out = deps.out

	return a, deps
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, &config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_RestoredSessionGoesHome(t *testing.T) {
	ui := &scriptedUI{mainLoop: func() (bool, bool, error) { return false, false, nil }}
	a, deps := newTestApp(t, ui)

	gomock.InOrder(
		deps.session.EXPECT().Restore(gomock.Any()).Return(models.LoggedInWithProfile),
		deps.session.EXPECT().Wait(),
		deps.session.EXPECT().State().Return(models.LoggedInWithProfile),
		deps.job.EXPECT().Start(gomock.Any(), time.Minute),
		deps.job.EXPECT().Stop(),
	)

	require.NoError(t, a.Run())
	assert.Equal(t, []string{"home"}, ui.calls)
}

func TestApp_Run_FreshInstallWalksAllFlows(t *testing.T) {
	state := models.LoggedOut
	ui := &scriptedUI{
		login:      func() error { state = models.LoggedInNoProfile; return nil },
		onboarding: func() error { state = models.LoggedInWithProfile; return nil },
		mainLoop:   func() (bool, bool, error) { return false, false, nil },
	}
	a, deps := newTestApp(t, ui)

	deps.session.EXPECT().Restore(gomock.Any()).Return(models.LoggedOut)
	deps.session.EXPECT().Wait()
	deps.session.EXPECT().State().DoAndReturn(func() models.AuthState { return state }).AnyTimes()
	deps.job.EXPECT().Start(gomock.Any(), time.Minute)
	deps.job.EXPECT().Stop()

	require.NoError(t, a.Run())
	assert.Equal(t, []string{"login", "onboarding", "home"}, ui.calls)
}

func TestApp_Run_ExpiredSessionReturnsToLogin(t *testing.T) {
	state := models.LoggedInWithProfile
	homeRuns := 0
	ui := &scriptedUI{
		login: func() error { state = models.LoggedInWithProfile; return nil },
		mainLoop: func() (bool, bool, error) {
			homeRuns++
			if homeRuns == 1 {
				state = models.LoggedOut
				return true, true, nil
			}
			return false, false, nil
		},
	}
	a, deps := newTestApp(t, ui)

	deps.session.EXPECT().Restore(gomock.Any()).Return(models.LoggedInWithProfile)
	deps.session.EXPECT().Wait()
	deps.session.EXPECT().State().DoAndReturn(func() models.AuthState { return state }).AnyTimes()
	deps.job.EXPECT().Start(gomock.Any(), time.Minute).Times(2)
	deps.job.EXPECT().Stop().Times(2)

	require.NoError(t, a.Run())
	assert.Equal(t, []string{"home", "login", "home"}, ui.calls)
	assert.Equal(t, []string{tui.MsgSessionExpired}, ui.notices)
}

func TestApp_Run_LogoutShowsLoginWithoutNotice(t *testing.T) {
	state := models.LoggedInWithProfile
	ui := &scriptedUI{
		login: func() error { return tui.ErrUserQuit },
		mainLoop: func() (bool, bool, error) {
			state = models.LoggedOut
			return true, false, nil
		},
	}
	a, deps := newTestApp(t, ui)

	deps.session.EXPECT().Restore(gomock.Any()).Return(models.LoggedInWithProfile)
	deps.session.EXPECT().Wait()
	deps.session.EXPECT().State().DoAndReturn(func() models.AuthState { return state }).AnyTimes()
	deps.job.EXPECT().Start(gomock.Any(), time.Minute)
	deps.job.EXPECT().Stop()

	// quitting from the menu is a normal exit
	require.NoError(t, a.Run())
	assert.Equal(t, []string{"home", "login"}, ui.calls)
	assert.Equal(t, []string{""}, ui.notices)
}

func TestApp_Run_UIError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &scriptedUI{mainLoop: func() (bool, bool, error) { return false, false, boom }}
	a, deps := newTestApp(t, ui)

	deps.session.EXPECT().Restore(gomock.Any()).Return(models.LoggedInWithProfile)
	deps.session.EXPECT().Wait()
	deps.session.EXPECT().State().Return(models.LoggedInWithProfile)
	deps.job.EXPECT().Start(gomock.Any(), time.Minute)
	deps.job.EXPECT().Stop()

	assert.ErrorIs(t, a.Run(), boom)
}
