package domain

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Between returns the text strictly between the first occurrence of start and
// the first following occurrence of end. The region may span lines but must
// not be empty.
func Between(text, start, end string) (string, error) {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `(.+?)` + regexp.QuoteMeta(end))

	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", fmt.Errorf("%w between delimiters %q and %q", ErrSubstringNotFound, start, end)
	}

	return match[1], nil
}

// After returns everything following the first occurrence of marker.
func After(text, marker string) (string, error) {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(marker) + `(.+)$`)

	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", fmt.Errorf("%w after delimiter %q", ErrSubstringNotFound, marker)
	}

	return match[1], nil
}

// Parts are the four regions of a tagged model.
type Parts struct {
	ComponentA     m.Fragment
	ComponentB     m.Fragment
	Specification  m.Fragment
	InitDefinition m.Fragment
}

// Decompose cuts model into its tagged regions. The init definition is
// whatever follows the specification end marker.
func Decompose(model m.Model, dialect m.Dialect) (Parts, error) {
	text := string(model)

	componentA, err := Between(text, dialect.ComponentAStart, dialect.ComponentAEnd)
	if err != nil {
		return Parts{}, err
	}

	componentB, err := Between(text, dialect.ComponentBStart, dialect.ComponentBEnd)
	if err != nil {
		return Parts{}, err
	}

	specification, err := Between(text, dialect.SpecificationStart, dialect.SpecificationEnd)
	if err != nil {
		return Parts{}, err
	}

	initDefinition, err := After(text, dialect.SpecificationEnd)
	if err != nil {
		return Parts{}, err
	}

	return Parts{
		ComponentA:     m.Fragment{Kind: m.FragmentComponentA, Text: componentA},
		ComponentB:     m.Fragment{Kind: m.FragmentComponentB, Text: componentB},
		Specification:  m.Fragment{Kind: m.FragmentSpecification, Text: specification},
		InitDefinition: m.Fragment{Kind: m.FragmentInitDefinition, Text: initDefinition},
	}, nil
}
