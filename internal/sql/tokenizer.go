package sql

import (
	"strings"

	"primdb/internal/dberr"
)

// Tokenize splits a raw command line into whitespace-delimited tokens
// while respecting single and double quotes: a quoted token may contain
// spaces and keeps its quote characters, so coercion can still tell a
// string literal apart from a bare token. Unbalanced quoting fails.
func Tokenize(line string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quote  byte // 0 when outside a quoted section
	)

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, dberr.Parse("unbalanced quote in %q", line)
	}
	flush()
	return tokens, nil
}

// SplitValueList parses a parenthesized, comma-separated value list as it
// appears after the values keyword of insert. The input must start with
// '(' and end with ')'; commas inside a quoted section do not split. Each
// token is returned trimmed and must be non-empty. An empty interior
// yields an empty list.
func SplitValueList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, dberr.Parse("value list must be enclosed in parentheses: %q", raw)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []string{}, nil
	}

	var (
		tokens []string
		cur    strings.Builder
		quote  byte
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',':
			tokens = append(tokens, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, dberr.Parse("unbalanced quote in value list %q", raw)
	}
	tokens = append(tokens, cur.String())

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, dberr.Parse("empty value in list %q", raw)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseAssignment parses a "col = value" clause from already-tokenized
// input. Two shapes are accepted: a single token containing one '='
// (age=28) or three tokens col, =, value.
func ParseAssignment(tokens []string) (col, raw string, err error) {
	switch len(tokens) {
	case 1:
		parts := strings.SplitN(tokens[0], "=", 2)
		if len(parts) != 2 {
			return "", "", dberr.Parse("expected <column> = <value>, got %q", tokens[0])
		}
		col, raw = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	case 3:
		if tokens[1] != "=" {
			return "", "", dberr.Parse("expected '=' between column and value, got %q", tokens[1])
		}
		col, raw = strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[2])
	default:
		return "", "", dberr.Parse("expected <column> = <value>, got %q", strings.Join(tokens, " "))
	}
	if col == "" || raw == "" {
		return "", "", dberr.Parse("expected <column> = <value>, got %q", strings.Join(tokens, " "))
	}
	return col, raw, nil
}
