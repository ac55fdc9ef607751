package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

// NormalizeFilter case-folds the text and strips diacritics, so that
// "Cámara" matches the filter "camara". Transformers carry state, so the
// chain is built per call instead of shared.
func NormalizeFilter(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// matchesName reports whether the product name contains the already
// normalized filter as a substring.
func matchesName(p entity.Product, normalizedFilter string) bool {
	if normalizedFilter == "" {
		return true
	}
	return strings.Contains(NormalizeFilter(p.Name), normalizedFilter)
}
