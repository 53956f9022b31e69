package config

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")
	// ErrExit is returned when help or version was printed and there is
	// nothing left to run.
	ErrExit = errors.New("nothing to run")
)
