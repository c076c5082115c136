package rules

import (
	"github.com/pkg/errors"

	"taxfile-api/internal/types/business"
)

// ErrUnknownFilingStatus is returned when a lookup receives a filing status
// outside the five accepted values. Callers feeding HTTP input hit this for
// malformed bodies; it maps to a 4xx at the boundary.
var ErrUnknownFilingStatus = errors.New("unknown filing status")

// ForYear returns the rules table for the given tax year. Years without a
// table fall back to the latest published year, so the calculator always has
// policy data; the validator surfaces the fallback as a warning.
func ForYear(year int) *YearRules {
	if r, ok := rulesByYear[year]; ok {
		return r
	}
	return rulesByYear[LatestYear]
}

// HasYear reports whether a rules table exists for the given tax year.
func HasYear(year int) bool {
	_, ok := rulesByYear[year]
	return ok
}

// StandardDeduction returns the standard deduction in cents for a filing
// status and tax year.
func StandardDeduction(filingStatus string, year int) (int64, error) {
	if !business.IsValidFilingStatus(filingStatus) {
		return 0, errors.Wrapf(ErrUnknownFilingStatus, "%q", filingStatus)
	}
	return ForYear(year).StandardDeductionCents[filingStatus], nil
}

// StandardDeductionTable returns the full standard deduction table for a tax
// year, keyed by filing status.
func StandardDeductionTable(year int) map[string]int64 {
	table := make(map[string]int64, len(business.FilingStatuses))
	for status, amount := range ForYear(year).StandardDeductionCents {
		table[status] = amount
	}
	return table
}

// BracketsFor returns the progressive rate schedule for a filing status and
// tax year.
func BracketsFor(filingStatus string, year int) ([]TaxBracket, error) {
	if !business.IsValidFilingStatus(filingStatus) {
		return nil, errors.Wrapf(ErrUnknownFilingStatus, "%q", filingStatus)
	}
	return ForYear(year).Brackets[filingStatus], nil
}

// TaxFromBrackets applies the progressive rate schedule for the filing
// status and year to taxable income. The per-bracket products are summed in
// basis-point units and divided once with round-half-up, so the result is
// exact to the cent.
func TaxFromBrackets(taxableCents int64, filingStatus string, year int) (int64, error) {
	brackets, err := BracketsFor(filingStatus, year)
	if err != nil {
		return 0, err
	}
	if taxableCents <= 0 {
		return 0, nil
	}

	var weighted int64 // cents x basis points
	var lower int64
	for _, b := range brackets {
		upper := b.UpToCents
		if upper == 0 || upper > taxableCents {
			upper = taxableCents
		}
		if upper > lower {
			weighted += (upper - lower) * b.RateBasisPoints
		}
		if b.UpToCents == 0 || taxableCents <= b.UpToCents {
			break
		}
		lower = b.UpToCents
	}
	return (weighted + 5000) / 10000, nil
}

// EITCFor returns the earned income credit parameters for a dependent count,
// clamped at the three-or-more band.
func EITCFor(year, dependentCount int) EITCParams {
	table := ForYear(year).EITCByDependentCount
	if dependentCount < 0 {
		dependentCount = 0
	}
	if dependentCount >= len(table) {
		dependentCount = len(table) - 1
	}
	return table[dependentCount]
}

// ApplyBasisPoints multiplies cents by a basis-point rate with round-half-up.
func ApplyBasisPoints(amountCents, rateBasisPoints int64) int64 {
	if amountCents <= 0 {
		return 0
	}
	return (amountCents*rateBasisPoints + 5000) / 10000
}
