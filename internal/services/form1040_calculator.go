package services

import (
	"time"

	"github.com/pkg/errors"

	"taxfile-api/internal/rules"
	"taxfile-api/internal/types/business"
)

// ErrInvalidFilingStatus is returned when a return carries a filing status
// outside the five accepted values. It is the calculator's only failure
// mode; every other missing field defaults to zero.
var ErrInvalidFilingStatus = errors.New("invalid filing status")

// qualifyingChildRelationships are the relationships eligible for the child
// tax credit (as opposed to the credit for other dependents).
var qualifyingChildRelationships = map[string]bool{
	"son":          true,
	"daughter":     true,
	"child":        true,
	"stepchild":    true,
	"foster_child": true,
	"grandchild":   true,
}

// Form1040Calculator computes every derived line of a simplified Form 1040.
// It is stateless and safe for concurrent use; all policy data comes from
// the year-keyed rules tables.
type Form1040Calculator struct{}

// NewForm1040Calculator creates a new Form 1040 calculator
func NewForm1040Calculator() *Form1040Calculator {
	return &Form1040Calculator{}
}

// Calculate computes the full line set for a tax return. It fails only when
// the filing status is unrecognized; optional income records default to
// zero so an empty return yields an all-zero result.
func (fc *Form1040Calculator) Calculate(ret *business.TaxReturn) (*business.Form1040Result, error) {
	if !business.IsValidFilingStatus(ret.FilingStatus) {
		return nil, errors.Wrapf(ErrInvalidFilingStatus, "%q", ret.FilingStatus)
	}

	year := ret.TaxYear
	yr := rules.ForYear(year)

	wages := ret.TotalWagesCents()
	withholding := ret.TotalWithholdingCents()
	interest := ret.TotalInterestCents()
	dividends := ret.TotalDividendsCents()

	var seNet int64
	if ret.ScheduleC != nil {
		seNet = ret.ScheduleC.NetProfitCents()
	}

	// Line 9: a self-employment loss offsets other income, but total income
	// never goes below zero.
	totalIncome := wages + interest + dividends + seNet
	if totalIncome < 0 {
		totalIncome = 0
	}

	// Line 11: no above-the-line adjustments are modeled, so AGI equals
	// total income.
	agi := totalIncome

	// Line 12: the filer's deduction choice is honored even when the
	// itemized total is below the standard deduction.
	deduction, err := fc.deductionFor(ret, year)
	if err != nil {
		return nil, err
	}

	// Line 15
	taxable := agi - deduction
	if taxable < 0 {
		taxable = 0
	}

	// Line 18
	taxBeforeCredits, err := rules.TaxFromBrackets(taxable, ret.FilingStatus, year)
	if err != nil {
		return nil, err
	}

	// Dependent credits. Non-refundable credits clamp at the tax liability;
	// the unused child tax credit converts to the refundable additional
	// credit instead of being discarded.
	qualifyingChildren, otherDependents := fc.countDependents(ret, yr)
	ctcPotential := int64(qualifyingChildren) * yr.CTC.PerQualifyingChildCents
	odcPotential := int64(otherDependents) * yr.CTC.PerOtherDependentCents

	nonRefundable := ctcPotential + odcPotential
	if nonRefundable > taxBeforeCredits {
		nonRefundable = taxBeforeCredits
	}

	// Line 25
	totalTax := taxBeforeCredits - nonRefundable

	earnedIncome := fc.earnedIncomeCents(ret)

	// Line 29
	unusedCTC := ctcPotential + odcPotential - nonRefundable
	if unusedCTC > ctcPotential {
		unusedCTC = ctcPotential
	}
	actc := fc.additionalChildTaxCredit(unusedCTC, qualifyingChildren, earnedIncome, yr)

	// Line 28
	eitc := fc.earnedIncomeCredit(ret, earnedIncome, agi, interest+dividends, yr)

	// Attribute the non-refundable credit back to its components for the
	// named view: ODC applies first, then CTC up to the remaining liability.
	odcUsed := odcPotential
	if odcUsed > nonRefundable {
		odcUsed = nonRefundable
	}
	ctcUsed := nonRefundable - odcUsed

	// Line 33
	totalPayments := withholding + eitc + actc

	// Lines 35 and 37 are mutually exclusive
	var refund, owed int64
	if totalPayments > totalTax {
		refund = totalPayments - totalTax
	} else {
		owed = totalTax - totalPayments
	}

	return &business.Form1040Result{
		TotalIncomeCents:              totalIncome,
		AdjustedGrossIncomeCents:      agi,
		DeductionCents:                deduction,
		TaxableIncomeCents:            taxable,
		TaxBeforeCreditsCents:         taxBeforeCredits,
		ChildTaxCreditCents:           ctcUsed,
		CreditForOtherDependentsCents: odcUsed,
		TotalCreditsCents:             nonRefundable,
		TotalTaxCents:                 totalTax,
		FederalWithholdingCents:       withholding,
		EarnedIncomeCreditCents:       eitc,
		AdditionalChildTaxCreditCents: actc,
		TotalPaymentsCents:            totalPayments,
		RefundCents:                   refund,
		AmountOwedCents:               owed,
	}, nil
}

// deductionFor resolves line 12 from the filer's deduction choice. An
// absent deduction type defaults to standard.
func (fc *Form1040Calculator) deductionFor(ret *business.TaxReturn, year int) (int64, error) {
	if ret.DeductionType == business.DeductionTypeItemized {
		if ret.ItemizedDeductions == nil {
			return 0, nil
		}
		return ret.ItemizedDeductions.TotalCents(), nil
	}
	return rules.StandardDeduction(ret.FilingStatus, year)
}

// countDependents splits the dependent list into qualifying children (child
// relationship and under the age limit at year end) and other dependents.
func (fc *Form1040Calculator) countDependents(ret *business.TaxReturn, yr *rules.YearRules) (qualifyingChildren, otherDependents int) {
	for _, dep := range ret.Dependents {
		if IsQualifyingChild(dep, yr.Year, yr.CTC.QualifyingChildAgeLimit) {
			qualifyingChildren++
		} else {
			otherDependents++
		}
	}
	return qualifyingChildren, otherDependents
}

// IsQualifyingChild reports whether a dependent qualifies for the child tax
// credit: a child-type relationship and strictly under the age limit on
// December 31 of the tax year. A dependent with an unparseable date of
// birth is treated as an other dependent.
func IsQualifyingChild(dep business.Dependent, taxYear, ageLimit int) bool {
	if !qualifyingChildRelationships[dep.Relationship] {
		return false
	}
	dob, err := time.Parse("2006-01-02", dep.DateOfBirth)
	if err != nil {
		return false
	}
	yearEnd := time.Date(taxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	if dob.After(yearEnd) {
		return false
	}
	age := taxYear - dob.Year()
	if dob.AddDate(age, 0, 0).After(yearEnd) {
		age--
	}
	return age < ageLimit
}

// earnedIncomeCents is W-2 wages plus net self-employment profit. A
// self-employment loss does not reduce earned income below wages.
func (fc *Form1040Calculator) earnedIncomeCents(ret *business.TaxReturn) int64 {
	earned := ret.TotalWagesCents()
	if ret.ScheduleC != nil {
		if profit := ret.ScheduleC.NetProfitCents(); profit > 0 {
			earned += profit
		}
	}
	return earned
}

// additionalChildTaxCredit converts the unused child tax credit to the
// refundable credit, limited by the per-child cap and by the refundable
// rate applied to earned income over the threshold.
func (fc *Form1040Calculator) additionalChildTaxCredit(unusedCTC int64, qualifyingChildren int, earnedIncome int64, yr *rules.YearRules) int64 {
	if unusedCTC <= 0 || qualifyingChildren == 0 {
		return 0
	}

	actc := unusedCTC
	if limit := int64(qualifyingChildren) * yr.CTC.RefundableLimitPerChildCents; actc > limit {
		actc = limit
	}
	earnedLimit := rules.ApplyBasisPoints(earnedIncome-yr.CTC.EarnedIncomeThresholdCents, yr.CTC.RefundableRateBasisPoints)
	if actc > earnedLimit {
		actc = earnedLimit
	}
	if actc < 0 {
		actc = 0
	}
	return actc
}

// earnedIncomeCredit computes line 28 from the year's EITC table. Married
// filing separately is ineligible, as is any return whose investment income
// exceeds the year limit.
func (fc *Form1040Calculator) earnedIncomeCredit(ret *business.TaxReturn, earnedIncome, agi, investmentIncome int64, yr *rules.YearRules) int64 {
	if ret.FilingStatus == business.FilingStatusMarriedFilingSeparately {
		return 0
	}
	if investmentIncome > yr.EITCInvestmentIncomeLimitCents {
		return 0
	}
	if earnedIncome <= 0 {
		return 0
	}

	params := rules.EITCFor(yr.Year, len(ret.Dependents))

	credit := rules.ApplyBasisPoints(earnedIncome, params.PhaseInRateBasisPoints)
	if credit > params.MaxCreditCents {
		credit = params.MaxCreditCents
	}

	phaseOutStart := params.PhaseOutStartCents
	if ret.FilingStatus == business.FilingStatusMarriedFilingJointly {
		phaseOutStart = params.PhaseOutStartMFJCents
	}

	// Phase out on the greater of AGI and earned income
	phaseOutIncome := agi
	if earnedIncome > phaseOutIncome {
		phaseOutIncome = earnedIncome
	}
	if phaseOutIncome > phaseOutStart {
		credit -= rules.ApplyBasisPoints(phaseOutIncome-phaseOutStart, params.PhaseOutRateBasisPoints)
	}
	if credit < 0 {
		credit = 0
	}
	return credit
}
