package commands

import (
	"bytes"
	"encoding/json"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/amelara/folio/internal/core/styles"
)

// colorizeJSON pretty-prints JSON with theme colours: keys in the primary colour,
// string values as success, numbers as warning, true/false/null as error. Invalid
// JSON is returned unchanged.
func colorizeJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	number := lipgloss.NewStyle().Foreground(styles.ColorWarning)
	literal := styles.TextErrorStyle

	var out strings.Builder
	raw := buf.String()

	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			str := raw[i : end+1]
			if rest := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(rest, ":") {
				out.WriteString(styles.TextPrimaryStyle.Render(str))
			} else {
				out.WriteString(styles.TextSuccessStyle.Render(str))
			}
			i = end + 1

		case ch == ':':
			out.WriteString(styles.TextMutedStyle.Render(":"))
			i++

		case ch >= '0' && ch <= '9' || ch == '-':
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(number.Render(raw[i:end]))
			i = end

		default:
			if word := literalAt(raw, i); word != "" {
				out.WriteString(literal.Render(word))
				i += len(word)
				continue
			}
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

func literalAt(s string, i int) string {
	for _, w := range []string{"true", "false", "null"} {
		if strings.HasPrefix(s[i:], w) {
			return w
		}
	}
	return ""
}

// stringEnd returns the index of the closing quote of the JSON string at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			return i
		}
	}
	return len(s) - 1
}
