// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
	"golang.org/x/term"
)

// readPassword reads a line from the terminal without echo.
var readPassword = term.ReadPassword

const usage = `usage: health-panda [flags] [command]

commands:
  status           show the session state
  login <email>    sign in (the password is read without echo)
  logout           sign out and forget the stored token
  foods            list logged meals
  scan <image>     upload a food photo for calorie estimation
  lookup <query>   look up nutrition facts, e.g. "2 eggs and toast"
  version          print build information

without a command the interactive UI starts`

func (a *App) runCommand(ctx context.Context, args []string) error {
	name, rest := args[0], args[1:]

	switch name {
	case "status":
		return a.cmdStatus(ctx)
	case "login":
		if len(rest) == 0 {
			return fmt.Errorf("%w: login <email>", ErrMissingArgument)
		}
		return a.cmdLogin(ctx, rest[0])
	case "logout":
		return a.cmdLogout(ctx)
	case "foods":
		return a.cmdFoods(ctx)
	case "scan":
		if len(rest) == 0 {
			return fmt.Errorf("%w: scan <image>", ErrMissingArgument)
		}
		return a.cmdScan(ctx, rest[0])
	case "lookup":
		if len(rest) == 0 {
			return fmt.Errorf("%w: lookup <query>", ErrMissingArgument)
		}
		return a.cmdLookup(ctx, strings.Join(rest, " "))
	case "version":
		fmt.Fprintln(a.out, a.buildInfo.String())
		return nil
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func (a *App) cmdStatus(ctx context.Context) error {
	session := a.services.SessionService
	session.Restore(ctx)
	session.Wait()

	state := session.State()
	if !state.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "State:\t%s\n", state)

	if info, err := utils.InspectToken(session.Token()); err == nil {
		if info.Subject != "" {
			fmt.Fprintf(w, "Account:\t%s\n", info.Subject)
		}
		if !info.ExpiresAt.IsZero() {
			expiry := info.ExpiresAt.Local().Format(time.DateTime)
			if info.Expired(time.Now()) {
				expiry += " (expired)"
			}
			fmt.Fprintf(w, "Token expires:\t%s\n", expiry)
		}
	}

	if profile, ok := session.Profile(); ok {
		fmt.Fprintf(w, "Weight:\t%.1f kg\n", profile.Weight)
		fmt.Fprintf(w, "Height:\t%.0f cm\n", profile.Height)
		if bmi := profile.BMI(); bmi > 0 {
			fmt.Fprintf(w, "BMI:\t%.1f\n", bmi)
		}
		fmt.Fprintf(w, "Goal:\t%s\n", validators.LabelOf(validators.Goals, profile.FitnessGoal))
	} else {
		fmt.Fprintf(w, "Profile:\tnot set up, start the app without a command to finish onboarding\n")
	}

	return w.Flush()
}

func (a *App) cmdLogin(ctx context.Context, email string) error {
	fmt.Fprint(a.out, "Password: ")
	password, err := readPassword(a.stdinFd)
	fmt.Fprintln(a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	session := a.services.SessionService
	if err = session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in")
	if session.State() == models.LoggedInNoProfile {
		fmt.Fprintln(a.out, "Your profile is not set up yet, start the app without a command to finish onboarding")
	}
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	session := a.services.SessionService
	state := session.Restore(ctx)
	session.Wait()
	if !state.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) cmdFoods(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	entries, err := a.services.FoodService.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No meals logged yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFOOD\tKCAL\tLOGGED")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.EntryID, e.FoodName, formatOptional(e.Calories, "%.0f"), e.CreatedOn)
	}
	fmt.Fprintf(w, "\tTotal\t%.0f\t\n", models.TotalCalories(entries))
	return w.Flush()
}

func (a *App) cmdScan(ctx context.Context, imagePath string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	result, err := a.services.FoodService.Scan(ctx, imagePath)
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s: %s kcal", result.FoodName, formatOptional(result.Calories, "%.0f"))
	if result.Confidence != nil {
		line += fmt.Sprintf(" (confidence %.0f%%)", *result.Confidence*100)
	}
	if result.Demo {
		line += " [demo]"
	}
	fmt.Fprintln(a.out, line)
	return nil
}

func (a *App) cmdLookup(ctx context.Context, query string) error {
	facts, err := a.services.FoodService.Lookup(ctx, query)
	if err != nil {
		return err
	}
	if len(facts) == 0 {
		fmt.Fprintln(a.out, "No matches")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FOOD\tSERVING\tKCAL\tPROTEIN\tCARBS\tFAT")
	for _, f := range facts {
		name := f.Name
		if f.Demo {
			name += " (estimate)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%dg\t%dg\t%dg\n", name, f.Serving, f.Calories, f.Protein, f.Carbs, f.Fat)
	}
	return w.Flush()
}

// requireSession restores the stored token for commands that need one.
func (a *App) requireSession(ctx context.Context) error {
	session := a.services.SessionService
	session.Restore(ctx)
	session.Wait()

	// the profile load may have hit a 401 and ended the session
	if !session.State().LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
