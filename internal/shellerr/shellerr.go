// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shellerr

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a stable error category. Codes are what callers match on; messages
// are for humans.
type Code string

const (
	CodeConfigNotFound     Code = "config_not_found"
	CodeConfigMalformed    Code = "config_malformed"
	CodeNoActiveConfig     Code = "no_active_config"
	CodeNotAuthenticated   Code = "not_authenticated"
	CodeUnknownScreen      Code = "unknown_screen"
	CodeUnknownItem        Code = "unknown_item"
	CodeMenuEntryDisabled  Code = "menu_entry_disabled"
	CodeInvalidCredentials Code = "invalid_credentials"
)

// Sentinels for errors.Is. Any *Error carrying the same Code matches.
var (
	ErrConfigNotFound     = &Error{Code: CodeConfigNotFound}
	ErrConfigMalformed    = &Error{Code: CodeConfigMalformed}
	ErrNoActiveConfig     = &Error{Code: CodeNoActiveConfig}
	ErrNotAuthenticated   = &Error{Code: CodeNotAuthenticated}
	ErrUnknownScreen      = &Error{Code: CodeUnknownScreen}
	ErrUnknownItem        = &Error{Code: CodeUnknownItem}
	ErrMenuEntryDisabled  = &Error{Code: CodeMenuEntryDisabled}
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials}
)

// Error is a coded error. Problems holds the individual findings for
// validation failures.
type Error struct {
	Code     Code
	Message  string
	Problems []string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.ReplaceAll(string(e.Code), "_", " ")
	}
	if len(e.Problems) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Problems, "; "))
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New returns an error with the given code and formatted message.
func New(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with the given code wrapping err. If err already
// carries a code, that code wins.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// Malformed builds a CodeConfigMalformed error listing every problem found.
func Malformed(vendorID string, problems []string) error {
	return &Error{
		Code:     CodeConfigMalformed,
		Message:  fmt.Sprintf("malformed configuration %q", vendorID),
		Problems: problems,
	}
}

// HasCode reports whether err is an *Error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
