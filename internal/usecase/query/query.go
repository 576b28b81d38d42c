// Package query evaluates JSONPath expressions against saved batch manifests.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/wingen/internal/domain"
)

// Get evaluates expr against a JSON document and renders the match as text.
// Scalars print as-is; arrays and objects print as JSON.
func Get(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", domain.InvalidConfig("query.get", "path", "empty jsonpath expression")
	}

	doc, err := parseJSON(body)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.get",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("document is not valid JSON: %w", err),
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "query.get",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %s: %w", expr, err),
		}
	}

	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.get",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %s: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	return toString(val)
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Common case: a wildcard that matched a single element
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
