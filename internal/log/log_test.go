// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		env   string
		level log.Level
		trace bool
	}{
		{"", log.ErrorLevel, false},
		{"bogus", log.ErrorLevel, false},
		{"info", log.InfoLevel, false},
		{"DEBUG", log.DebugLevel, false},
		{"trace", log.DebugLevel, true},
		{"warn", log.WarnLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("VSHELL_LOG", tt.env)
			InitLogger()
			assert.Equal(t, tt.trace, traceEnabled)

			l, ok := log.Log.(*log.Logger)
			if assert.True(t, ok) {
				assert.Equal(t, tt.level, l.Level)
			}
		})
	}
}

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })

	t.Setenv("VSHELL_LOG", "trace")
	InitLogger()

	log.WithField("vendor", "myschool").Info("loaded")
	Tracef("switch %d", 2)
	Debugf("plain")

	out := buf.String()
	assert.Contains(t, out, " I loaded vendor=myschool\n")
	assert.Contains(t, out, " T switch 2\n")
	assert.Contains(t, out, " D plain\n")
}

func TestSetOutput_Nil(t *testing.T) {
	prev := SetOutput(nil)
	t.Cleanup(func() { SetOutput(prev) })

	t.Setenv("VSHELL_LOG", "error")
	InitLogger()
	assert.NotPanics(t, func() { Errorf("dropped") })
}
