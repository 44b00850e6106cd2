package menu

import "errors"

var (
	// ErrEmptyMenu is returned when a definition declares no screens.
	ErrEmptyMenu = errors.New("menu declares no screens")
	// ErrNoStart is returned when the start screen is missing.
	ErrNoStart = errors.New("start screen not set")
	// ErrUnknownScreen is returned when a screen reference cannot be resolved.
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrNoOptions is returned for screens without options.
	ErrNoOptions = errors.New("screen has no options")
	// ErrNoLabel is returned for options without a label.
	ErrNoLabel = errors.New("option has no label")
	// ErrNoAction is returned for options that do nothing.
	ErrNoAction = errors.New("option has no action")
	// ErrAmbiguousAction is returned for options declaring several actions.
	ErrAmbiguousAction = errors.New("option declares more than one action")
	// ErrNegativeRetries is returned when retries is below zero.
	ErrNegativeRetries = errors.New("retries must not be negative")
)
