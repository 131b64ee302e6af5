// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a result set with --filter expressions.
//
// An expression is a key, an operator and a target. Operators:
//
//   - = : equal; numbers compare numerically
//   - ~ : equal ignoring case
//   - ^ : has prefix
//   - < : less than
//   - > : greater than
//   - @ : contains a substring, or a list element
//   - / : matches a regular expression
//
// Any operator may be negated with a leading !, as in "name!^A". A key with
// no operator keeps rows where the key is present.
//
// Examples:
//
//   - "classSection=Play Group - A"
//   - "price>100"
//   - "prescription=true"
//   - "name!@mg"
//
// Expressions are separated by commas, or by VSHELL_FILTER_DELIM when set.
// A key names an attribute by its output key, or else is read as a path
// into the row.
package filters
