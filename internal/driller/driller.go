// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex matches one path segment: a key, optionally followed by [n]
// to pick an element or [*] / [] to keep the whole list.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_&-]+)(\[(\d+|\*)?\])?$`)

// Driller walks jsonData along a dot path such as "screens.details.items[1].name".
// A list reached without an index collapses to its only element when it has
// exactly one, and is returned whole otherwise. Invalid segments and
// out-of-range indexes yield an empty result.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)
	if path == "" {
		return current
	}

	for _, segment := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(segment)
		if matches == nil {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(gjson.Escape(matches[1]))
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1 && matches[3] == "" && len(arr) == 1:
				val = arr[0]
			case index == -1:
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if index >= 0 {
			return gjson.Result{}
		}

		current = val
	}

	return current
}
