// FILE: lixenwraith/oasconfig/matcher.go
package oasconfig

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dlclark/regexp2"
)

// Matcher decides whether a package or class name is selected by a scan setting.
// Matching is always against the whole candidate.
type Matcher interface {
	Matches(candidate string) bool
	// String returns the unanchored expression the matcher was built from.
	String() string
}

type matcherKind uint8

const (
	// matcherRegex holds a user supplied expression compiled verbatim.
	matcherRegex matcherKind = iota
	// matcherLiterals holds an alternation of escaped literal names.
	matcherLiterals
)

// patternMatcher is the single Matcher implementation. Exactly one kind is
// chosen when the owning setting is first resolved.
type patternMatcher struct {
	kind     matcherKind
	expr     string
	literals mapset.Set[string] // nil for matcherRegex
	re       *regexp2.Regexp    // anchored form of expr
}

// isRegexValue reports whether a raw setting value opts into regex mode.
func isRegexValue(raw string) bool {
	return strings.HasPrefix(raw, "^") || strings.HasSuffix(raw, "$")
}

// compileRegexMatcher compiles raw as given. A compile failure is returned
// wrapped in ErrInvalidPattern.
func compileRegexMatcher(key, raw string) (*patternMatcher, error) {
	if _, err := regexp2.Compile(raw, regexp2.None); err != nil {
		return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidPattern, key, raw, err)
	}
	re, err := compileAnchored(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidPattern, key, raw, err)
	}
	return &patternMatcher{kind: matcherRegex, expr: raw, re: re}, nil
}

// newLiteralMatcher builds an alternation over literals. An empty set yields a
// matcher that accepts only the empty string.
func newLiteralMatcher(literals mapset.Set[string]) (*patternMatcher, error) {
	expr := ""
	if literals.Cardinality() > 0 {
		// Sorted for a stable expression; set order is not significant.
		members := literals.ToSlice()
		sort.Strings(members)
		for i, m := range members {
			members[i] = regexp2.Escape(m)
		}
		expr = "(" + strings.Join(members, "|") + ")"
	}
	re, err := compileAnchored(expr)
	if err != nil {
		// Escaped literals always compile
		return nil, fmt.Errorf("failed to compile literal alternation %q: %w", expr, err)
	}
	return &patternMatcher{kind: matcherLiterals, expr: expr, literals: literals, re: re}, nil
}

func compileAnchored(expr string) (*regexp2.Regexp, error) {
	return regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
}

// Matches reports whether the whole candidate matches. regexp2 only errors on
// match timeouts, none is configured.
func (m *patternMatcher) Matches(candidate string) bool {
	ok, err := m.re.MatchString(candidate)
	return err == nil && ok
}

func (m *patternMatcher) String() string {
	return m.expr
}

// matcherOf applies the pattern contract to one raw setting value. builtIn is
// merged only in literal mode.
func matcherOf(key, raw string, present bool, builtIn []string) (*patternMatcher, error) {
	if present && isRegexValue(raw) {
		return compileRegexMatcher(key, raw)
	}
	literals := csvSet(raw, present)
	for _, name := range builtIn {
		literals.Add(name)
	}
	return newLiteralMatcher(literals)
}
