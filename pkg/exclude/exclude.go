// Package exclude decides which directories are pruned while walking a
// folder selection.
package exclude

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultName is the directory name excluded when no other set is given.
const DefaultName = "node_modules"

// Pattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type Pattern struct {
	Pattern *regexp.Regexp // Compiled regular expression for the pattern.
	Negate  bool           // Indicates if the pattern is a negation (starts with '!').
	Line    string         // Original pattern line.
	LineNo  int            // Line number in the source (1-based).
}

// Set is an ordered collection of exclusion patterns. Later patterns take
// precedence over earlier ones.
type Set struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Set.
func New(logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Set{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// Default returns a Set that prunes every directory named node_modules.
func Default(logger *zap.Logger) *Set {
	s := New(logger)
	s.CompileLines(DefaultName)
	return s
}

// CompileLines compiles a set of pattern lines and adds them to the Set.
// Empty lines and comments are skipped.
func (s *Set) CompileLines(lines ...string) {
	for i, line := range lines {
		re, negate, ok := parsePatternLine(line)
		if !ok {
			continue
		}
		p := &Pattern{
			Pattern: re,
			Negate:  negate,
			Line:    line,
			LineNo:  i + 1,
		}
		s.patterns = append(s.patterns, p)
		s.logger.Debug("Compiled exclude pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile reads a pattern file, one pattern per line, and adds its
// patterns to the Set.
func (s *Set) CompileFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("Failed to read exclude file", zap.String("filePath", path), zap.Error(err))
		return fmt.Errorf("failed to read exclude file: %w", err)
	}

	before := len(s.patterns)
	s.CompileLines(strings.Split(string(data), "\n")...)
	s.logger.Debug("Compiled exclude file",
		zap.String("filePath", path),
		zap.Int("patternCount", len(s.patterns)-before))
	return nil
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Lines returns the original text of every compiled pattern, in order.
func (s *Set) Lines() []string {
	lines := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		lines = append(lines, p.Line)
	}
	return lines
}

// Matches reports whether the directory at relPath, relative to the folder
// being walked, is excluded.
func (s *Set) Matches(relPath string) bool {
	matched, _ := s.MatchesWithPattern(relPath)
	return matched
}

// MatchesWithPattern reports whether relPath is excluded and returns the
// pattern that decided it, if any.
func (s *Set) MatchesWithPattern(relPath string) (bool, *Pattern) {
	normalized := filepath.ToSlash(relPath)

	matched := false
	var decided *Pattern
	for _, p := range s.patterns {
		if !p.Pattern.MatchString(normalized) {
			continue
		}
		matched = !p.Negate
		decided = p
	}
	return matched, decided
}
