package learningpath

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model output is close to JSON but not reliably JSON: markdown fences,
// unescaped quotes inside prose fields, trailing commentary after the
// array. normalizeModules repairs what it can and falls back through
// progressively looser parses before giving up.

var (
	fenceOpenRe  = regexp.MustCompile("```json\\s*")
	fenceCloseRe = regexp.MustCompile("```\\s*$")
	proseFieldRe = regexp.MustCompile(`"(content|question|answer|title|description)"\s*:\s*"`)
)

// normalizeModules parses a modules JSON string into a slice. A parsed
// value that is not an array yields an empty slice, not an error.
func normalizeModules(raw string) ([]any, error) {
	if raw == "" {
		raw = "[]"
	}
	cleaned := cleanJSON(raw)

	value, err := decodeLeadingValue(cleaned)
	if err != nil {
		if uerr := json.Unmarshal([]byte(cleaned), &value); uerr != nil {
			sub, ok := bracketSubstring(cleaned)
			if !ok {
				return nil, uerr
			}
			if serr := json.Unmarshal([]byte(sub), &value); serr != nil {
				return nil, serr
			}
		}
	}

	modules, ok := value.([]any)
	if !ok {
		return []any{}, nil
	}
	return modules, nil
}

// cleanJSON strips markdown code fences and escapes unescaped quotes
// inside prose field values.
func cleanJSON(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return repairProseQuotes(s)
}

const escapedQuoteSentinel = "\x00ESCAPED\x00"

// repairProseQuotes escapes bare quotes inside the string values of
// prose fields (content, question, answer, title, description). The
// closing quote of a value is taken to be the first quote followed by
// a structural character, so quotes mid-sentence get escaped instead
// of terminating the value early.
func repairProseQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	rest := s
	for {
		loc := proseFieldRe.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:loc[1]])
		body := rest[loc[1]:]

		end, ok := findValueEnd(body)
		if !ok {
			b.WriteString(body)
			return b.String()
		}

		value := body[:end]
		value = strings.ReplaceAll(value, `\"`, escapedQuoteSentinel)
		value = strings.ReplaceAll(value, `"`, `\"`)
		value = strings.ReplaceAll(value, escapedQuoteSentinel, `\"`)
		b.WriteString(value)

		rest = body[end:]
	}
}

// findValueEnd returns the offset of the quote that closes a string
// value: an unescaped quote whose next non-space character is a comma,
// closing brace, closing bracket, or end of input.
func findValueEnd(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j == len(s) || s[j] == ',' || s[j] == '}' || s[j] == ']' {
				return i, true
			}
		}
	}
	return 0, false
}

// decodeLeadingValue parses the first JSON value in s, tolerating
// trailing garbage after it.
func decodeLeadingValue(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// bracketSubstring extracts the span from the first '[' to the last ']'.
func bracketSubstring(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
