package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooShort           = errors.New("name must be at least 2 characters")
	ErrGenderRequired         = errors.New("please choose male, female or other")
	ErrAgeOutOfRange          = errors.New("age must be between 13 and 100")
	ErrHeightOutOfRange       = errors.New(`height must be between 3'0" and 7'2"`)
	ErrInvalidInches          = errors.New("inches must be between 0 and 11")
	ErrWeightOutOfRange       = errors.New("weight must be 30-250 kg or 66-550 lb")
	ErrInvalidWeightUnit      = errors.New("weight unit must be kg or lb")
	ErrInvalidBodyType        = errors.New("please choose a body type")
	ErrInvalidGoal            = errors.New("please choose a goal")
	ErrTargetWeightOutOfRange = errors.New("target weight must be between 20 and 300")
	ErrInvalidActivityLevel   = errors.New("please choose an activity level")

	ErrInvalidEmail     = errors.New("please enter a valid email")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
