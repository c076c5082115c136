package business

// Form1040Result contains every computed line of the simplified Form 1040.
// All amounts are cents. Recomputing from the same TaxReturn yields an
// identical result: the calculator has no hidden state.
type Form1040Result struct {
	// Income
	TotalIncomeCents         int64 `json:"total_income_cents"`          // line 9
	AdjustedGrossIncomeCents int64 `json:"adjusted_gross_income_cents"` // line 11
	DeductionCents           int64 `json:"deduction_cents"`             // line 12
	TaxableIncomeCents       int64 `json:"taxable_income_cents"`        // line 15

	// Tax and credits
	TaxBeforeCreditsCents         int64 `json:"tax_before_credits_cents"`          // line 18
	ChildTaxCreditCents           int64 `json:"child_tax_credit_cents"`            // line 19 (CTC portion)
	CreditForOtherDependentsCents int64 `json:"credit_for_other_dependents_cents"` // line 19 (ODC portion)
	TotalCreditsCents             int64 `json:"total_credits_cents"`               // line 22
	TotalTaxCents                 int64 `json:"total_tax_cents"`                   // line 25

	// Payments and refundable credits
	FederalWithholdingCents       int64 `json:"federal_withholding_cents"`
	EarnedIncomeCreditCents       int64 `json:"earned_income_credit_cents"`        // line 28
	AdditionalChildTaxCreditCents int64 `json:"additional_child_tax_credit_cents"` // line 29
	TotalPaymentsCents            int64 `json:"total_payments_cents"`              // line 33

	// Balance
	RefundCents     int64 `json:"refund_cents"`      // line 35
	AmountOwedCents int64 `json:"amount_owed_cents"` // line 37
}

// Lines returns the result keyed by Form 1040 line number, for callers
// that want the form view rather than the named view.
func (r *Form1040Result) Lines() map[string]int64 {
	return map[string]int64{
		"line9":  r.TotalIncomeCents,
		"line11": r.AdjustedGrossIncomeCents,
		"line12": r.DeductionCents,
		"line15": r.TaxableIncomeCents,
		"line18": r.TaxBeforeCreditsCents,
		"line19": r.ChildTaxCreditCents + r.CreditForOtherDependentsCents,
		"line22": r.TotalCreditsCents,
		"line25": r.TotalTaxCents,
		"line28": r.EarnedIncomeCreditCents,
		"line29": r.AdditionalChildTaxCreditCents,
		"line33": r.TotalPaymentsCents,
		"line35": r.RefundCents,
		"line37": r.AmountOwedCents,
	}
}
