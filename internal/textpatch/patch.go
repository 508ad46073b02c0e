// Package textpatch implements idempotent line-level edits to generated
// text files. Files are mutated surgically rather than regenerated so
// that human edits around the touched lines survive.
package textpatch

import (
	"strings"
)

// splitLines breaks content into lines, remembering whether the content
// ended with a newline so Join can restore the convention.
func splitLines(content string) (lines []string, trailingNewline bool) {
	trailingNewline = strings.HasSuffix(content, "\n")
	trimmed := strings.TrimSuffix(content, "\n")
	if trimmed == "" && !trailingNewline {
		return []string{}, false
	}
	return strings.Split(trimmed, "\n"), trailingNewline
}

func joinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}

// InsertUniqueLine inserts line into content unless an identical line
// already exists anywhere in it. The insertion point is immediately
// after the last line whose trimmed text starts with afterPrefix; if no
// such line exists, immediately before the first line whose trimmed
// text starts with beforePrefix; otherwise the line is appended. Either
// prefix may be empty to disable that anchor. Repeated calls with the
// same line are no-ops, and repeated calls with different lines keep a
// stable append-like ordering after the anchor.
func InsertUniqueLine(content, line, afterPrefix, beforePrefix string) string {
	lines, trailingNewline := splitLines(content)

	for _, existing := range lines {
		if existing == line {
			return content
		}
	}

	idx := len(lines)
	if afterPrefix != "" {
		if last := lastIndexWithPrefix(lines, afterPrefix); last >= 0 {
			idx = last + 1
			return joinLines(insertAt(lines, idx, line), trailingNewline)
		}
	}
	if beforePrefix != "" {
		if first := firstIndexWithPrefix(lines, beforePrefix); first >= 0 {
			idx = first
		}
	}

	return joinLines(insertAt(lines, idx, line), trailingNewline)
}

// UpsertKey replaces the value of the first `key=...` line, also
// matching the disabled variant `# key=...`, or appends `key=value`
// when no such line exists. Other lines are left untouched.
func UpsertKey(content, key, value string) string {
	lines, trailingNewline := splitLines(content)

	prefix := key + "="
	commented := "# " + key + "="
	newLine := key + "=" + value

	for i, line := range lines {
		if strings.HasPrefix(line, prefix) || strings.HasPrefix(line, commented) {
			lines[i] = newLine
			return joinLines(lines, trailingNewline)
		}
	}

	return joinLines(append(lines, newLine), trailingNewline)
}

// UpsertListKey treats the key's value as a comma-separated set: the
// token is appended only if absent, preserving the existing token order.
// When the key is missing entirely, a `key=token` line is appended.
func UpsertListKey(content, key, token string) string {
	lines, trailingNewline := splitLines(content)

	prefix := key + "="
	for i, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		tokens := splitList(strings.TrimPrefix(line, prefix))
		for _, t := range tokens {
			if t == token {
				return content
			}
		}
		tokens = append(tokens, token)
		lines[i] = prefix + strings.Join(tokens, ",")
		return joinLines(lines, trailingNewline)
	}

	return joinLines(append(lines, prefix+token), trailingNewline)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}

func lastIndexWithPrefix(lines []string, prefix string) int {
	last := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			last = i
		}
	}
	return last
}

func firstIndexWithPrefix(lines []string, prefix string) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return i
		}
	}
	return -1
}

func insertAt(lines []string, idx int, line string) []string {
	lines = append(lines, "")
	copy(lines[idx+1:], lines[idx:])
	lines[idx] = line
	return lines
}
