package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Rewriter performs the textual edits of the pipeline. Implementations match
// text, not structure: parameter and location names must not overlap with one
// another or with other names of the model.
type Rewriter interface {
	// ReplaceAll replaces every occurrence of old with replacement.
	ReplaceAll(text, old, replacement string) string

	// MarkLocation rewrites every "keyword <whitespace> location" into
	// "keyword location" followed by suffix.
	MarkLocation(text, keyword string, location m.LocationName, suffix string) string
}

type tokenRewriter struct{}

// NewTokenRewriter returns a Rewriter that only matches whole identifiers: a
// name bordered by word characters is not touched inside a longer word, so
// parameter "c" leaves "loc" alone.
func NewTokenRewriter() Rewriter {
	return tokenRewriter{}
}

func (tokenRewriter) ReplaceAll(text, old, replacement string) string {
	if old == "" {
		return text
	}

	return bounded(old).ReplaceAllLiteralString(text, replacement)
}

func (tokenRewriter) MarkLocation(text, keyword string, location m.LocationName, suffix string) string {
	pattern := regexp.MustCompile(boundedPattern(keyword, true, false) + `\s+` + boundedPattern(string(location), false, true))

	return pattern.ReplaceAllLiteralString(text, keyword+" "+string(location)+suffix)
}

type literalRewriter struct{}

// NewLiteralRewriter returns a Rewriter working on raw substrings, the way the
// original interface script did.
func NewLiteralRewriter() Rewriter {
	return literalRewriter{}
}

func (literalRewriter) ReplaceAll(text, old, replacement string) string {
	if old == "" {
		return text
	}

	return strings.ReplaceAll(text, old, replacement)
}

func (literalRewriter) MarkLocation(text, keyword string, location m.LocationName, suffix string) string {
	pattern := regexp.MustCompile(regexp.QuoteMeta(keyword) + `\s+` + regexp.QuoteMeta(string(location)))

	return pattern.ReplaceAllLiteralString(text, keyword+" "+string(location)+suffix)
}

func bounded(name string) *regexp.Regexp {
	return regexp.MustCompile(boundedPattern(name, true, true))
}

// boundedPattern quotes name and adds \b on the requested sides whose edge
// character is a word character.
func boundedPattern(name string, leading, trailing bool) string {
	pattern := regexp.QuoteMeta(name)
	if name == "" {
		return pattern
	}

	if leading && isWordByte(name[0]) {
		pattern = `\b` + pattern
	}

	if trailing && isWordByte(name[len(name)-1]) {
		pattern += `\b`
	}

	return pattern
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// fold threads acc through step for each item in order, stopping at the first
// error.
func fold[T, A any](items []T, acc A, step func(A, T) (A, error)) (A, error) {
	for _, item := range items {
		next, err := step(acc, item)
		if err != nil {
			return acc, err
		}

		acc = next
	}

	return acc, nil
}
