package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON after
// every recovery strategy has been attempted.
var ErrParseFailed = errors.New("failed to parse response")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse attempts to unmarshal model-produced content as JSON into T.
// Recovery strategies are tried in order until one decodes: the raw content,
// the interior of a markdown code fence, the first balanced {...} region,
// and finally the balanced region after repairing bare newlines inside
// string values and trailing commas. Returns ErrParseFailed if every
// strategy fails.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	for _, candidate := range candidates(content) {
		if err := json.Unmarshal([]byte(candidate), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}

// candidates produces decode attempts in recovery order, each a
// progressively more aggressive interpretation of the content.
func candidates(content string) []string {
	out := []string{content}

	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) >= 2 {
		content = strings.TrimSpace(matches[1])
		out = append(out, content)
	}

	if region, ok := balancedRegion(content); ok {
		out = append(out, region, repair(region))
	}

	return out
}

// balancedRegion extracts the first brace-balanced {...} substring,
// ignoring braces that occur inside string values.
func balancedRegion(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(content); i++ {
		c := content[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return content[start : i+1], true
				}
			}
		}
	}

	return "", false
}

var trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

// repair applies best-effort fixes for the malformations models most
// commonly produce: raw newlines inside string values and trailing commas
// before a closing brace or bracket.
func repair(content string) string {
	return trailingCommaRegex.ReplaceAllString(escapeStringNewlines(content), "$1")
}

func escapeStringNewlines(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))

	inString := false
	escaped := false

	for i := 0; i < len(content); i++ {
		c := content[i]

		if escaped {
			sb.WriteByte(c)
			escaped = false
			continue
		}

		switch c {
		case '\\':
			sb.WriteByte(c)
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
			sb.WriteByte(c)
		case '\n':
			if inString {
				sb.WriteString(`\n`)
			} else {
				sb.WriteByte(c)
			}
		case '\r':
			if inString {
				sb.WriteString(`\r`)
			} else {
				sb.WriteByte(c)
			}
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
