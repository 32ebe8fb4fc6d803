package domain

import (
	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Valuate replaces each parameter of valuation with its value, pair by pair.
// Each replacement sees the text produced by the previous ones. Parameters
// absent from text are ignored.
func Valuate(rewriter Rewriter, text string, valuation m.Valuation) string {
	valuated, _ := fold(valuation, text, func(acc string, pair m.ValuationPair) (string, error) {
		return rewriter.ReplaceAll(acc, string(pair.Parameter), pair.Value), nil
	})

	return valuated
}
