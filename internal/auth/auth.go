// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package auth checks login credentials. There is exactly one account, the
// test credential; it gates Store.Login and nothing else.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/vshell/vshell/internal/shellerr"
)

const (
	TestUsername = "test"
	TestPassword = "test"
)

// Verify checks username and password against the test credential.
func Verify(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return shellerr.New(shellerr.CodeInvalidCredentials, "please enter both username and password")
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(TestUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(TestPassword)) == 1
	if !userOK || !passOK {
		return shellerr.New(shellerr.CodeInvalidCredentials, "invalid username or password")
	}
	return nil
}
