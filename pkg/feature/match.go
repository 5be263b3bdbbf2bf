package feature

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern syntax tags, accepted as a "syntax:" prefix on patterns.
const (
	globSyntax  = "glob"
	regexSyntax = "regex"
)

// Matches reports whether pattern matches this feature's short name
// or, failing that, its full name. Matching is case-insensitive. A
// pattern without a syntax tag is treated as a glob; "glob:" and
// "regex:" tags select the syntax explicitly. Any other tag, or an
// expression the selected syntax rejects, fails with
// ErrInvalidPattern.
func (f *Feature) Matches(pattern string) (bool, error) {
	match, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	if f.shortName != "" {
		if ok, err := match(strings.ToLower(f.shortName)); err != nil {
			return false, err
		} else if ok {
			return true, nil
		}
	}
	return match(strings.ToLower(f.fullName))
}

// compilePattern lowers the pattern and resolves its syntax tag into a
// match function over lower-cased candidate names.
func compilePattern(pattern string) (func(string) (bool, error), error) {
	syntax, expr := globSyntax, strings.ToLower(pattern)
	if tag, rest, ok := strings.Cut(expr, ":"); ok {
		syntax, expr = tag, rest
	}
	switch syntax {
	case globSyntax:
		if !doublestar.ValidatePattern(expr) {
			return nil, fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPattern)
		}
		glob := expr
		return func(name string) (bool, error) {
			ok, err := doublestar.Match(glob, name)
			if err != nil {
				return false, fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPattern)
			}
			return ok, nil
		}, nil
	case regexSyntax:
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPattern)
		}
		return func(name string) (bool, error) {
			return re.MatchString(name), nil
		}, nil
	}
	return nil, fmt.Errorf("pattern %q: unknown syntax %q: %w", pattern, syntax, ErrInvalidPattern)
}
