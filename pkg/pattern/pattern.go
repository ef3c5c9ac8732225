// Package pattern defines named regular expressions and loads them from
// YAML files. Compiled patterns are consumed by pkg/locate, which reports
// where they match at line/column coordinates.
package pattern

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single pattern evaluation to keep catastrophic
// backtracking from hanging a scan.
const matchTimeout = 5 * time.Second

// Pattern is a named regular expression with metadata.
type Pattern struct {
	ID          string // e.g., "cp.todo.1"
	Name        string // human-readable name
	Pattern     string // regex pattern
	Description string // optional
	Examples    []string
}

// Validate checks pattern consistency and required fields.
func Validate(p *Pattern) error {
	if p == nil {
		return fmt.Errorf("pattern is nil")
	}
	if p.ID == "" {
		return fmt.Errorf("pattern ID is required")
	}
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if p.Pattern == "" {
		return fmt.Errorf("pattern regex is required")
	}
	if _, err := compileRegexp(p.Pattern); err != nil {
		return fmt.Errorf("invalid regex for pattern %s: %w", p.ID, err)
	}
	return nil
}

// Compiled pairs a pattern with its compiled program.
type Compiled struct {
	Pattern *Pattern
	Re      *regexp2.Regexp
}

// Compile compiles a pattern for matching.
func Compile(p *Pattern) (*Compiled, error) {
	re, err := compileRegexp(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q for %s: %w", p.Pattern, p.ID, err)
	}
	return &Compiled{Pattern: p, Re: re}, nil
}

// CompileAll compiles every pattern, failing on the first bad one.
func CompileAll(patterns []*Pattern) ([]*Compiled, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns provided")
	}
	compiled := make([]*Compiled, 0, len(patterns))
	for _, p := range patterns {
		c, err := Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// compileRegexp tries RE2 mode first (no backtracking), falling back to the
// default Perl-compatible mode for patterns that need its extensions.
func compileRegexp(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.RE2|regexp2.Multiline)
	if err != nil {
		re, err = regexp2.Compile(expr, regexp2.Multiline)
		if err != nil {
			return nil, err
		}
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}
