package services

import (
	"fmt"
	"time"

	"taxfile-api/internal/helpers"
	"taxfile-api/internal/rules"
	"taxfile-api/internal/types/business"
)

// ReturnValidator checks whether a tax return is internally consistent and
// well-formed enough to file. It never fails: every problem, including a
// fully empty return, surfaces as a finding in the result, and the checks
// run in a fixed order so output is reproducible for identical input.
type ReturnValidator struct{}

// NewReturnValidator creates a new return validator
func NewReturnValidator() *ReturnValidator {
	return &ReturnValidator{}
}

// ValidateTaxReturn runs the full check battery. Errors block filing;
// warnings do not. The battery does not fail fast, so the caller receives
// the complete problem list in one pass.
func (rv *ReturnValidator) ValidateTaxReturn(ret *business.TaxReturn) *business.ValidationResult {
	result := business.NewValidationResult()
	if ret == nil {
		result.AddError("tax_return", "tax return is required")
		return result
	}

	rv.checkFilingStatus(ret, result)
	rv.checkTaxpayer(ret, result)
	rv.checkSpouse(ret, result)
	rv.checkAddress(ret, result)
	rv.checkDependents(ret, result)
	rv.checkIncome(ret, result)
	rv.checkDeductions(ret, result)
	rv.checkDirectDeposit(ret, result)
	rv.checkSignatures(ret, result)
	rv.checkTaxYear(ret, result)

	return result
}

func (rv *ReturnValidator) checkFilingStatus(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.FilingStatus == "" {
		result.AddError("filing_status", "filing status is required")
		return
	}
	if !business.IsValidFilingStatus(ret.FilingStatus) {
		result.AddError("filing_status", fmt.Sprintf("unrecognized filing status %q", ret.FilingStatus))
	}
}

func (rv *ReturnValidator) checkTaxpayer(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.Taxpayer.FirstName == "" {
		result.AddError("taxpayer.first_name", "first name is required")
	}
	if ret.Taxpayer.LastName == "" {
		result.AddError("taxpayer.last_name", "last name is required")
	}
	if !helpers.IsSSNValid(ret.Taxpayer.SSN) {
		result.AddError("taxpayer.ssn", "a valid Social Security number is required")
	}
	rv.checkDateOfBirth("taxpayer.date_of_birth", ret.Taxpayer.DateOfBirth, true, result)
}

func (rv *ReturnValidator) checkSpouse(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.Spouse == nil {
		if business.RequiresSpouse(ret.FilingStatus) {
			result.AddError("spouse", fmt.Sprintf("filing status %q requires a spouse record", ret.FilingStatus))
		}
		return
	}

	if ret.Spouse.FirstName == "" {
		result.AddError("spouse.first_name", "spouse first name is required")
	}
	if ret.Spouse.LastName == "" {
		result.AddError("spouse.last_name", "spouse last name is required")
	}
	if !helpers.IsSSNValid(ret.Spouse.SSN) {
		result.AddError("spouse.ssn", "a valid spouse Social Security number is required")
	}
	rv.checkDateOfBirth("spouse.date_of_birth", ret.Spouse.DateOfBirth, true, result)
}

func (rv *ReturnValidator) checkAddress(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.Address.Street == "" {
		result.AddError("address.street", "street is required")
	}
	if ret.Address.City == "" {
		result.AddError("address.city", "city is required")
	}
	if ret.Address.State == "" {
		result.AddError("address.state", "state is required")
	}
	if ret.Address.Zip == "" {
		result.AddError("address.zip", "ZIP code is required")
	} else if !helpers.IsZipValid(ret.Address.Zip) {
		result.AddError("address.zip", fmt.Sprintf("%q is not a valid ZIP code", ret.Address.Zip))
	}
}

func (rv *ReturnValidator) checkDependents(ret *business.TaxReturn, result *business.ValidationResult) {
	for i, dep := range ret.Dependents {
		prefix := fmt.Sprintf("dependents[%d]", i)
		if dep.FirstName == "" {
			result.AddError(prefix+".first_name", "dependent first name is required")
		}
		if !helpers.IsSSNValid(dep.SSN) {
			result.AddError(prefix+".ssn", "a valid dependent Social Security number is required")
		}
		rv.checkDateOfBirth(prefix+".date_of_birth", dep.DateOfBirth, true, result)
	}
}

func (rv *ReturnValidator) checkIncome(ret *business.TaxReturn, result *business.ValidationResult) {
	for i, w2 := range ret.W2Income {
		prefix := fmt.Sprintf("w2_income[%d]", i)
		if w2.WagesCents < 0 {
			result.AddError(prefix+".wages_cents", "wages cannot be negative")
		}
		if w2.FederalWithholdingCents < 0 {
			result.AddError(prefix+".federal_withholding_cents", "withholding cannot be negative")
		}
		if w2.FederalWithholdingCents > w2.WagesCents && w2.WagesCents >= 0 {
			result.AddWarning(prefix+".federal_withholding_cents", "withholding exceeds wages on this W-2")
		}
		if w2.EmployerEIN != "" && !helpers.IsEINValid(w2.EmployerEIN) {
			result.AddError(prefix+".employer_ein", fmt.Sprintf("%q is not a valid EIN", w2.EmployerEIN))
		}
	}

	for i, f := range ret.Form1099INT {
		if f.InterestIncomeCents < 0 {
			result.AddError(fmt.Sprintf("form_1099_int[%d].interest_income_cents", i), "interest income cannot be negative")
		}
	}
	for i, f := range ret.Form1099DIV {
		if f.OrdinaryDividendsCents < 0 {
			result.AddError(fmt.Sprintf("form_1099_div[%d].ordinary_dividends_cents", i), "dividend income cannot be negative")
		}
	}

	if ret.ScheduleC != nil {
		if ret.ScheduleC.GrossReceiptsCents < 0 {
			result.AddError("schedule_c.gross_receipts_cents", "gross receipts cannot be negative")
		}
		if ret.ScheduleC.ExpensesCents < 0 {
			result.AddError("schedule_c.expenses_cents", "expenses cannot be negative")
		}
		// Sole proprietors without employees may file under an SSN, so the
		// EIN is only format-checked when present.
		if ret.ScheduleC.EIN != "" && !helpers.IsEINValid(ret.ScheduleC.EIN) {
			result.AddError("schedule_c.ein", fmt.Sprintf("%q is not a valid EIN", ret.ScheduleC.EIN))
		}
	}
}

func (rv *ReturnValidator) checkDeductions(ret *business.TaxReturn, result *business.ValidationResult) {
	switch ret.DeductionType {
	case "", business.DeductionTypeStandard:
		// standard is the default
	case business.DeductionTypeItemized:
		if ret.ItemizedDeductions == nil {
			result.AddError("itemized_deductions", "itemized deduction detail is required when deduction type is itemized")
			return
		}
		itemized := ret.ItemizedDeductions.TotalCents()
		if itemized < 0 {
			result.AddError("itemized_deductions", "itemized deductions cannot be negative")
			return
		}
		income := ret.TotalWagesCents() + ret.TotalInterestCents() + ret.TotalDividendsCents()
		if ret.ScheduleC != nil {
			if profit := ret.ScheduleC.NetProfitCents(); profit > 0 {
				income += profit
			}
		}
		if income > 0 && itemized > income/2 {
			result.AddWarning("itemized_deductions", "itemized deductions exceed half of total income")
		}
	default:
		result.AddError("deduction_type", fmt.Sprintf("unrecognized deduction type %q", ret.DeductionType))
	}
}

func (rv *ReturnValidator) checkDirectDeposit(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.DirectDeposit == nil {
		return
	}
	if !helpers.IsRoutingNumberValid(ret.DirectDeposit.RoutingNumber) {
		result.AddError("direct_deposit.routing_number", "a valid ABA routing number is required")
	}
	if !helpers.IsBankAccountNumberValid(ret.DirectDeposit.AccountNumber) {
		result.AddError("direct_deposit.account_number", "a valid bank account number is required")
	}
}

func (rv *ReturnValidator) checkSignatures(ret *business.TaxReturn, result *business.ValidationResult) {
	// An unsigned return cannot be submitted, so a missing signature is an
	// error rather than a warning.
	if !ret.TaxpayerSignature {
		result.AddError("taxpayer_signature", "taxpayer signature is required")
	}
	if ret.FilingStatus == business.FilingStatusMarriedFilingJointly && !ret.SpouseSignature {
		result.AddError("spouse_signature", "spouse signature is required on a joint return")
	}
}

func (rv *ReturnValidator) checkTaxYear(ret *business.TaxReturn, result *business.ValidationResult) {
	if ret.TaxYear == 0 {
		result.AddWarning("tax_year", fmt.Sprintf("tax year not set; %d rules will apply", rules.LatestYear))
		return
	}
	if !rules.HasYear(ret.TaxYear) {
		result.AddWarning("tax_year", fmt.Sprintf("no rules published for tax year %d; %d rules will apply", ret.TaxYear, rules.LatestYear))
	}
}

func (rv *ReturnValidator) checkDateOfBirth(field, dob string, required bool, result *business.ValidationResult) {
	if dob == "" {
		if required {
			result.AddError(field, "date of birth is required")
		}
		return
	}
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		result.AddError(field, fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", dob))
		return
	}
	if parsed.After(time.Now()) {
		result.AddError(field, "date of birth cannot be in the future")
	}
}
