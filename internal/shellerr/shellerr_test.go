// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package shellerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := New(CodeUnknownScreen, "unknown screen %q", "nowhere")
	assert.ErrorIs(t, err, ErrUnknownScreen)
	assert.NotErrorIs(t, err, ErrUnknownItem)

	wrapped := fmt.Errorf("navigate: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnknownScreen)
	assert.True(t, HasCode(wrapped, CodeUnknownScreen))
	assert.False(t, HasCode(errors.New("plain"), CodeUnknownScreen))
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel", ErrNoActiveConfig, "no active config"},
		{"formatted", New(CodeNotAuthenticated, "login required to open %s", "home"), "login required to open home"},
		{"problems", Malformed("acme", []string{"tabs is required", "drawer is required"}),
			`malformed configuration "acme": tabs is required; drawer is required`},
		{"wrapped", Wrap(errors.New("boom"), CodeConfigNotFound, "read failed"), "read failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestWrap_KeepsCode(t *testing.T) {
	inner := New(CodeConfigMalformed, "bad")
	err := Wrap(inner, CodeConfigNotFound, "load")
	assert.ErrorIs(t, err, ErrConfigMalformed)
	assert.NotErrorIs(t, err, ErrConfigNotFound)

	cause := errors.New("eof")
	err = Wrap(cause, CodeConfigNotFound, "load")
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.ErrorIs(t, err, cause)
}
