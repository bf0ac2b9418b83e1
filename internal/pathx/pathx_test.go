// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

const doc = `{
	"name": "alpha",
	"address": {"city": "Lisbon", "geo": {"lat": 38.7}},
	"tags": ["a", "b", "c"],
	"rooms": [{"kind": "bed"}, {"kind": "bath"}]
}`

func TestGet(t *testing.T) {
	parsed := gjson.Parse(doc)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"top-level key", "name", "alpha"},
		{"nested key", "address.city", "Lisbon"},
		{"deeply nested", "address.geo.lat", "38.7"},
		{"array index", "tags[1]", "b"},
		{"index into objects", "rooms[0].kind", "bed"},
		{"whole array with star", "tags[*]", `["a", "b", "c"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(parsed, tt.path)
			assert.True(t, got.Exists(), "path should resolve")
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestGetMisses(t *testing.T) {
	parsed := gjson.Parse(doc)

	for _, path := range []string{
		"missing",
		"address.country",
		"tags[9]",
		"tags[x]",
		"na me",
		"",
	} {
		t.Run(path, func(t *testing.T) {
			assert.False(t, Get(parsed, path).Exists(), "path should not resolve")
		})
	}
}
