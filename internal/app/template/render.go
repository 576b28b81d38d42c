package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/wingen/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is unknown or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateError(input, errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateError(input, errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", templateError(input, fmt.Errorf("unknown variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func templateError(input string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%q: %w: %w", input, err, domain.ErrInvalidConfig),
	}
}
