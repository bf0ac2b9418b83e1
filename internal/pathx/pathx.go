// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pathx resolves dotted field paths against JSON documents. Filter
// fields address nested values with dots ("address.city") and optional
// array indices ("tags[0]", "rooms[*]" for the whole list).
package pathx

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// partRegex matches one path part: a key plus an optional [index] or [*]
// suffix.
var partRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Get resolves path within doc. The zero gjson.Result is returned for paths
// that do not resolve or are malformed.
func Get(doc gjson.Result, path string) gjson.Result {
	current := doc
	for _, part := range strings.Split(path, ".") {
		matches := partRegex.FindStringSubmatch(part)
		if matches == nil {
			return gjson.Result{}
		}

		val := current.Get(matches[1])

		// matches[3] is the index inside the brackets, if any. A bare
		// key against an array keeps the whole array so membership
		// operators can inspect it.
		if idx := matches[3]; idx != "" && idx != "*" {
			i, err := strconv.Atoi(idx)
			if err != nil || !val.IsArray() {
				return gjson.Result{}
			}
			arr := val.Array()
			if i < 0 || i >= len(arr) {
				return gjson.Result{}
			}
			val = arr[i]
		}

		current = val
	}
	return current
}
