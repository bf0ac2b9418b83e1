// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "binary only gets help",
			args:     []string{"filtq"},
			expected: []string{"filtq", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"filtq", "check", "a:EQ(1)"},
			expected: []string{"filtq", "check", "a:EQ(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	if handleVersion([]string{"filtq", "check", "a:EQ(1)"}) {
		t.Error("handleVersion should not trigger without the flag")
	}
	if !handleVersion([]string{"filtq", "--version"}) {
		t.Error("handleVersion should trigger on --version")
	}
	if !handleVersion([]string{"filtq", "-v"}) {
		t.Error("handleVersion should trigger on -v")
	}
}
