// File: pkg/exclude/patterns.go
package exclude

import (
	"regexp"
	"strings"
)

// parsePatternLine turns one gitignore-style line into an anchored regular
// expression. ok is false for blank lines, comments and invalid patterns.
func parsePatternLine(line string) (re *regexp.Regexp, negate bool, ok bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Escaped leading '#' or '!'.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	// Only directories are matched, so a trailing slash carries no extra meaning.
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return nil, false, false
	}

	compiled, err := regexp.Compile(anchorPattern(globToRegex(strings.TrimPrefix(trimmed, "/")), trimmed))
	if err != nil {
		return nil, false, false
	}
	return compiled, negate, true
}

// globToRegex converts '**', '*' and '?' wildcards to regex equivalents and
// quotes everything else.
func globToRegex(glob string) string {
	rs := []rune(glob)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '*' && i+1 < len(rs) && rs[i+1] == '*':
			i++
			if i+1 < len(rs) && rs[i+1] == '/' {
				i++
				b.WriteString("(.*/)?")
			} else {
				b.WriteString(".*")
			}
		case r == '*':
			b.WriteString("[^/]*")
		case r == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// anchorPattern anchors the expression to the whole relative path. Patterns
// containing a slash are rooted at the walked folder; the rest match a
// directory name at any depth.
func anchorPattern(expr, original string) string {
	if strings.Contains(original, "/") {
		return "^" + expr + "$"
	}
	return "^(|.*/)" + expr + "$"
}
