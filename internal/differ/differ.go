// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Options controls how a difference is rendered.
type Options struct {
	// Exclude lists top-level keys, such as "screens", left out of the
	// comparison.
	Exclude []string
	// Color turns on ANSI coloring of added and removed lines.
	Color bool
	// ShowArrayIndex prefixes list elements with their index.
	ShowArrayIndex bool
}

// Identical is printed when the documents do not differ.
const Identical = "The configurations are identical."

// Diff writes the structural difference between two JSON documents to w and
// reports whether they differ.
func Diff(w io.Writer, left, right []byte, opts Options) (bool, error) {
	log.Debugf("diff: len(left)=%d len(right)=%d", len(left), len(right))

	leftDoc, err := decode(left, opts.Exclude)
	if err != nil {
		return false, fmt.Errorf("failed to decode left document: %w", err)
	}
	rightDoc, err := decode(right, opts.Exclude)
	if err != nil {
		return false, fmt.Errorf("failed to decode right document: %w", err)
	}

	delta := gojsondiff.New().CompareObjects(leftDoc, rightDoc)
	if !delta.Modified() {
		fmt.Fprintln(w, Identical)
		return false, nil
	}

	f := formatter.NewAsciiFormatter(leftDoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: opts.ShowArrayIndex,
		Coloring:       opts.Color,
	})
	out, err := f.Format(delta)
	if err != nil {
		return true, fmt.Errorf("failed to format difference: %w", err)
	}
	fmt.Fprint(w, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(w)
	}
	return true, nil
}

// decode parses doc as a JSON object without the excluded keys.
func decode(doc []byte, exclude []string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	for _, key := range exclude {
		if key = strings.TrimSpace(key); key != "" {
			delete(m, key)
		}
	}
	return m, nil
}
