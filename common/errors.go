// Package common provides shared constants, types, and utilities
// used across the WG Menu Bar application.
package common

import "errors"

// Sentinel errors for the persistence boundaries.
// These can be checked with errors.Is() for proper error handling.
// Tunnel actions report failure through their Outcome value instead of
// errors, so there are no action sentinels.
var (
	// Preference errors.
	ErrPreferenceNotFound = errors.New("preference not found")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// History errors.
	ErrHistoryClosed = errors.New("history store is closed")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
