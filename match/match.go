// Package match builds predicates over JSON document candidates using
// JSONPath expressions.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"genprop"
)

// ValidJSON returns a predicate that holds when the candidate is a
// syntactically valid JSON document.
func ValidJSON() genprop.Predicate[string] {
	return func(doc string) genprop.Outcome {
		if !gjson.Valid(doc) {
			return genprop.Failure("invalid JSON document")
		}
		return genprop.Success()
	}
}

// HasPath returns a predicate that holds when the JSONPath exists in the
// candidate document.
func HasPath(path string) genprop.Predicate[string] {
	converted := convertJSONPath(path)
	return func(doc string) genprop.Outcome {
		if !gjson.Valid(doc) {
			return genprop.Failure("invalid JSON document")
		}
		if !gjson.Get(doc, converted).Exists() {
			return genprop.Failuref("path %q not found", path)
		}
		return genprop.Success()
	}
}

// PathEquals returns a predicate that holds when the value at the
// JSONPath equals want.
func PathEquals(path string, want any) genprop.Predicate[string] {
	converted := convertJSONPath(path)
	return func(doc string) genprop.Outcome {
		if !gjson.Valid(doc) {
			return genprop.Failure("invalid JSON document")
		}
		value := gjson.Get(doc, converted)
		if !value.Exists() {
			return genprop.Failuref("path %q not found", path)
		}
		if fmt.Sprintf("%v", value.Value()) != fmt.Sprintf("%v", want) {
			return genprop.Failuref("path %q is %v, want %v", path, value.Value(), want)
		}
		return genprop.Success()
	}
}

// Extract extracts values from JSON using JSONPath expressions.
// Paths use JSONPath syntax ($.foo.bar) which is converted to gjson format.
// Array access: $.items[0].id -> items.0.id
// Returns all errors joined if multiple extractions fail.
func Extract(body []byte, rules map[string]string) (map[string]any, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	result := make(map[string]any, len(rules))
	var errs []error

	for varName, jsonPath := range rules {
		path := convertJSONPath(jsonPath)
		value := gjson.GetBytes(body, path)

		if !value.Exists() {
			errs = append(errs, fmt.Errorf("path %q not found for variable %q", jsonPath, varName))
			continue
		}

		result[varName] = value.Value()
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return result, nil
}

// convertJSONPath converts JSONPath syntax to gjson path format.
// $.foo.bar -> foo.bar
// $.items[0].id -> items.0.id
// $.data[*].name -> data.#.name
func convertJSONPath(path string) string {
	if strings.HasPrefix(path, "$.") {
		path = path[2:]
	} else if strings.HasPrefix(path, "$") {
		path = path[1:]
	}

	var result strings.Builder
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				content := path[i+1 : j]
				if content == "*" {
					result.WriteString(".#")
				} else {
					result.WriteByte('.')
					result.WriteString(content)
				}
				i = j + 1
				continue
			}
		}
		result.WriteByte(path[i])
		i++
	}

	return result.String()
}
