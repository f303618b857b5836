package main

import (
	"errors"

	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
)

const (
	exitRuntime = 1
	exitConfig  = 2
)

type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitRuntime
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	switch tperrors.GetCode(err) {
	case tperrors.ErrCodeConfigLoad, tperrors.ErrCodeConfigParse, tperrors.ErrCodeConfigInvalid:
		return exitConfig
	}
	return exitRuntime
}
