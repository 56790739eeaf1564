package tui

import (
	"github.com/MKhiriev/health-panda/models"
)

// Page names known to [RootModel].
const (
	pageMenu       = "menu"
	pageLogin      = "login"
	pageRegister   = "register"
	pageOnboarding = "onboarding"
	pageHome       = "home"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload
// is delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form once the session service
// returns. A nil Err ends the sign-in flow.
type LoginResult struct {
	Email string
	Err   error
}

// RegisterResult is produced by the registration form. Registration signs
// the user in, so a nil Err also ends the sign-in flow.
type RegisterResult struct {
	Email string
	Err   error
}

// ProfileSaved is produced when onboarding submits the profile. A nil Err
// ends the onboarding flow.
type ProfileSaved struct {
	Err error
}

type entriesLoadedMsg struct {
	entries []models.FoodEntry
	err     error
}

type profileRefreshedMsg struct {
	err error
}

type scanDoneMsg struct {
	result models.FoodScanResult
	err    error
}

type lookupDoneMsg struct {
	query string
	facts []models.NutritionFact
	err   error
}

type logoutDoneMsg struct{}

type clearStatusMsg struct{}

// SignedOutNotice is delivered to the menu when the sign-in flow starts
// because a session ended, so the user sees why.
type SignedOutNotice struct {
	Reason string
}
