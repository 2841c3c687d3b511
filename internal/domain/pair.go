package domain

import (
	"regexp"
	"strings"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrency checks the canonical three-letter uppercase code form.
func ValidCurrency(code string) bool {
	return currencyRe.MatchString(code)
}

// ValidatePair checks the canonical "BASE/QUOTE" form and rejects
// identical legs. Guards pair codes arriving at the API boundary;
// loaded records are taken as-is.
func ValidatePair(p string) bool {
	base, quote := SplitPair(p)
	return ValidCurrency(base) && ValidCurrency(quote) && base != quote
}

// SplitPair returns the base and quote legs of a pair code.
// Both are empty when the separator is absent.
func SplitPair(code string) (base, quote string) {
	i := strings.Index(code, "/")
	if i < 0 {
		return "", ""
	}
	return code[:i], code[i+1:]
}

// MakePair builds a pair code from its legs.
func MakePair(base, quote string) string {
	return base + "/" + quote
}
