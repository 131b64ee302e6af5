// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"

	"github.com/vshell/vshell/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"vshell", "items"},
			expected: []string{"vshell", "items"},
		},
		{
			name:     "no duplicates",
			args:     []string{"vshell", "items", "--output", "text", "--titles"},
			expected: []string{"vshell", "items", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"vshell", "items", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"vshell", "items", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"vshell", "items", "--titles", "--debug", "--titles"},
			expected: []string{"vshell", "items", "--debug", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"vshell", "items", "--output=json", "--titles", "--output=text"},
			expected: []string{"vshell", "items", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"vshell", "items", "--output=json", "--output", "text"},
			expected: []string{"vshell", "items", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"vshell", "show", "--vendor", "a", "--attrs", "foo", "--vendor", "b", "--attrs", "bar"},
			expected: []string{"vshell", "show", "--vendor", "b", "--attrs", "bar"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"vshell", "items", "pharmacy", "--output", "json", "--output", "text"},
			expected: []string{"vshell", "items", "pharmacy", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"vshell", "items", "-o", "json", "-o", "text"},
			expected: []string{"vshell", "items", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"vshell", "items", "--color", "--no-color"},
			expected: []string{"vshell", "items", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"vshell", "items", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"vshell", "items", "--output", "c"},
		},
		{
			name:     "flag at end with no value treated as boolean",
			args:     []string{"vshell", "items", "--titles", "--debug", "--titles"},
			expected: []string{"vshell", "items", "--debug", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"vshell", "items", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args)
	expected := []string{"vshell", "items", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlagsWithPositionalAfterFlags(t *testing.T) {
	// Positional args after flags should be preserved.
	args := []string{"vshell", "items", "--output", "json", "myschool", "--output", "text"}
	result := deduplicateFlags(args)
	expected := []string{"vshell", "items", "myschool", "--output", "text"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"vshell", "items", "--titles"},
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"vshell", "items", "--titles"},
		},
		{
			name:      "single entry injected",
			args:      []string{"vshell", "items", "--titles"},
			insertIdx: 2,
			configVal: []string{"--color"},
			expected:  []string{"vshell", "items", "--color", "--titles"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"vshell", "items", "--titles"},
			insertIdx: 2,
			configVal: []string{"--output text"},
			expected:  []string{"vshell", "items", "--output", "text", "--titles"},
		},
		{
			name:      "multiple entries",
			args:      []string{"vshell", "items"},
			insertIdx: 2,
			configVal: []string{"--color", "--output json"},
			expected:  []string{"vshell", "items", "--color", "--output", "json"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"vshell", "items", "pharmacy", "--titles"},
			insertIdx: 3,
			configVal: []string{"--color"},
			expected:  []string{"vshell", "items", "pharmacy", "--color", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSet(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestExpandSets(t *testing.T) {
	t.Setenv("VSHELL_CFG_FILE", "testdata/sets.yaml")
	if _, err := config.Load(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "defaults injected after the command",
			args:     []string{"vshell", "items", "pharmacy"},
			expected: []string{"vshell", "items", "--titles", "pharmacy"},
		},
		{
			name:     "named set replaces its marker",
			args:     []string{"vshell", "items", "pharmacy", "@lowstock", "--sort", "-stock"},
			expected: []string{"vshell", "items", "pharmacy", "--filter", "stock<100", "--sort", "name", "--output", "json", "--sort", "-stock"},
		},
		{
			name:     "unknown set expands to nothing",
			args:     []string{"vshell", "items", "@nope"},
			expected: []string{"vshell", "items"},
		},
		{
			name:     "command without sets",
			args:     []string{"vshell", "vendors"},
			expected: []string{"vshell", "vendors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandSets(append([]string{}, tt.args...))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expandSets(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestSetsThenDeduplicate(t *testing.T) {
	t.Setenv("VSHELL_CFG_FILE", "testdata/sets.yaml")
	if _, err := config.Load(); err != nil {
		t.Fatal(err)
	}

	args := []string{"vshell", "items", "pharmacy", "@lowstock", "--output", "yaml"}
	result := deduplicateFlags(expandSets(args))
	expected := []string{"vshell", "items", "pharmacy", "--filter", "stock<100", "--sort", "name", "--output", "yaml"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	if got := handleNakedCommand([]string{"vshell"}); !reflect.DeepEqual(got, []string{"vshell", "--help"}) {
		t.Errorf("got %v", got)
	}
	if got := handleNakedCommand([]string{"vshell", "vendors"}); !reflect.DeepEqual(got, []string{"vshell", "vendors"}) {
		t.Errorf("got %v", got)
	}
}
