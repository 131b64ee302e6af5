// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/vshell/vshell/internal/attrs"
	"github.com/vshell/vshell/internal/driller"
)

// DelimEnv overrides the filter separator for values that contain commas.
const DelimEnv = "VSHELL_FILTER_DELIM"

// filterRegex splits an expression into key, optionally negated operator and
// target: "name", "name=Viyom", "stock!<1".
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is one parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses spec into filters. Blank and keyless entries are
// logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter
	if spec == "" {
		return filters
	}

	delim := ","
	if d, ok := os.LookupEnv(DelimEnv); ok && d != "" {
		delim = d
	}

	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Errorf("invalid filter: empty key in %s", expr)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: strings.TrimPrefix(operand, "!"),
			Value:   parts[3],
		})
	}
	return filters
}

// FilterDataset keeps the rows of candidates that pass every filter in spec
// and projects each onto attrs, keyed by OutputKey. Values are left
// untransformed.
func FilterDataset(candidates gjson.Result, attrs attrs.AttrList, spec string) []map[string]any {
	filters := BuildFilters(spec)

	//nolint:prealloc
	var rows []map[string]any
	for _, candidate := range candidates.Array() {
		if !applyFilters(candidate, attrs, filters) {
			continue
		}
		row := make(map[string]any, len(attrs))
		for _, attr := range attrs {
			if attr.Key == "*" {
				continue
			}
			row[attr.OutputKey] = driller.Driller(candidate.Raw, attr.Key).Value()
		}
		rows = append(rows, row)
	}
	return rows
}

// applyFilters reports whether candidate passes every filter. A filter key
// names an attribute by OutputKey, or else is used as a path into the row.
func applyFilters(candidate gjson.Result, attrs attrs.AttrList, filters []Filter) bool {
	for _, filter := range filters {
		path := filter.Key
		for _, attr := range attrs {
			if attr.OutputKey == filter.Key {
				path = attr.Key
				break
			}
		}

		value := driller.Driller(candidate.Raw, path).Value()
		if value == nil {
			log.Debugf("filter %s: no value in row", filter.Key)
			return false
		}
		if !check(value, filter) {
			return false
		}
	}
	return true
}

// check dispatches on the value's JSON type. Numeric strings, such as
// prices, compare as numbers under < > and =.
func check(value any, filter Filter) bool {
	switch v := value.(type) {
	case float64:
		return checkNumericOperand(v, filter)
	case bool:
		return checkStringOperand(strconv.FormatBool(v), filter)
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil && isNumericOperand(filter.Operand) {
			if _, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64); err == nil {
				return checkNumericOperand(n, filter)
			}
		}
		return checkStringOperand(v, filter)
	default:
		if filter.Operand == "@" {
			return checkContainsOperand(value, filter)
		}
		log.Errorf("unsupported type for filtering: %T", value)
		return false
	}
}

func isNumericOperand(op string) bool {
	return op == "=" || op == "<" || op == ">"
}

// checkContainsOperand tests list membership or map key presence.
func checkContainsOperand(value any, filter Filter) bool {
	found := false
	switch val := value.(type) {
	case []any:
		for _, item := range val {
			if fmt.Sprint(item) == filter.Value {
				found = true
				break
			}
		}
	case map[string]any:
		_, found = val[filter.Value]
	default:
		return false
	}
	return found != filter.Negate
}

// checkNumericOperand compares numerically under = < and >.
func checkNumericOperand(value float64, filter Filter) bool {
	if filter.Operand == "" {
		return !filter.Negate
	}
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Errorf("invalid numeric value: %s", filter.Value)
		return false
	}

	var result bool
	switch filter.Operand {
	case "=":
		result = value == tgt
	case ">":
		result = value > tgt
	case "<":
		result = value < tgt
	default:
		log.Errorf("unsupported numeric operand: %s", filter.Operand)
		return false
	}
	return result != filter.Negate
}

// checkStringOperand compares strings. A filter with no operator only asks
// that the key be present.
func checkStringOperand(value string, filter Filter) bool {
	var result bool
	switch filter.Operand {
	case "":
		result = true
	case "=":
		result = value == filter.Value
	case "~":
		result = strings.EqualFold(value, filter.Value)
	case "^":
		result = strings.HasPrefix(value, filter.Value)
	case ">":
		result = value > filter.Value
	case "<":
		result = value < filter.Value
	case "@":
		result = strings.Contains(value, filter.Value)
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		result = matched
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
	return result != filter.Negate
}
