package business

// FilingStatus values accepted on a tax return
const (
	FilingStatusSingle                   = "single"
	FilingStatusMarriedFilingJointly     = "married_filing_jointly"
	FilingStatusMarriedFilingSeparately  = "married_filing_separately"
	FilingStatusHeadOfHousehold          = "head_of_household"
	FilingStatusQualifyingSurvivingSpouse = "qualifying_surviving_spouse"
)

// Deduction types
const (
	DeductionTypeStandard = "standard"
	DeductionTypeItemized = "itemized"
)

// FilingStatuses lists every accepted filing status in a stable order
var FilingStatuses = []string{
	FilingStatusSingle,
	FilingStatusMarriedFilingJointly,
	FilingStatusMarriedFilingSeparately,
	FilingStatusHeadOfHousehold,
	FilingStatusQualifyingSurvivingSpouse,
}

// IsValidFilingStatus checks if the provided string is one of the five accepted filing statuses.
func IsValidFilingStatus(status string) bool {
	switch status {
	case FilingStatusSingle,
		FilingStatusMarriedFilingJointly,
		FilingStatusMarriedFilingSeparately,
		FilingStatusHeadOfHousehold,
		FilingStatusQualifyingSurvivingSpouse:
		return true
	default:
		return false
	}
}

// RequiresSpouse reports whether the filing status implies a spouse record on the return.
func RequiresSpouse(status string) bool {
	return status == FilingStatusMarriedFilingJointly || status == FilingStatusMarriedFilingSeparately
}

// Person identifies a taxpayer or spouse on a return
type Person struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	SSN         string `json:"ssn"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

// Address is the filing address on a return
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Dependent represents a claimed dependent. Relationship and date of birth
// drive child-tax-credit eligibility.
type Dependent struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	SSN          string `json:"ssn"`
	DateOfBirth  string `json:"date_of_birth"` // YYYY-MM-DD
	Relationship string `json:"relationship"`
}

// W2Income is a single W-2 wage record
type W2Income struct {
	Employer                string `json:"employer,omitempty"`
	EmployerEIN             string `json:"employer_ein,omitempty"`
	WagesCents              int64  `json:"wages_cents"`
	FederalWithholdingCents int64  `json:"federal_withholding_cents"`
}

// Form1099INT is a single interest income record
type Form1099INT struct {
	Payer               string `json:"payer,omitempty"`
	InterestIncomeCents int64  `json:"interest_income_cents"`
}

// Form1099DIV is a single dividend income record
type Form1099DIV struct {
	Payer                  string `json:"payer,omitempty"`
	OrdinaryDividendsCents int64  `json:"ordinary_dividends_cents"`
}

// ScheduleCBusiness is a self-employment income/expense record
type ScheduleCBusiness struct {
	BusinessName       string `json:"business_name,omitempty"`
	EIN                string `json:"ein,omitempty"`
	GrossReceiptsCents int64  `json:"gross_receipts_cents"`
	ExpensesCents      int64  `json:"expenses_cents"`
}

// NetProfitCents returns gross receipts minus expenses. A loss is negative.
func (b ScheduleCBusiness) NetProfitCents() int64 {
	return b.GrossReceiptsCents - b.ExpensesCents
}

// ItemizedDeductions holds the itemized deduction categories
type ItemizedDeductions struct {
	MedicalCents          int64 `json:"medical_cents"`
	StateLocalTaxesCents  int64 `json:"state_local_taxes_cents"`
	MortgageInterestCents int64 `json:"mortgage_interest_cents"`
	CharitableCents       int64 `json:"charitable_cents"`
	OtherCents            int64 `json:"other_cents"`
}

// TotalCents sums all itemized deduction categories
func (d ItemizedDeductions) TotalCents() int64 {
	return d.MedicalCents + d.StateLocalTaxesCents + d.MortgageInterestCents + d.CharitableCents + d.OtherCents
}

// DirectDeposit is the refund routing block on a return
type DirectDeposit struct {
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type,omitempty"` // checking or savings
}

// TaxReturn is the full input record for calculation and validation.
// Instances are transient: constructed per request, passed through the
// calculator and validator, and discarded. All monetary amounts are cents.
type TaxReturn struct {
	TaxYear            int                 `json:"tax_year"`
	FilingStatus       string              `json:"filing_status"`
	Taxpayer           Person              `json:"taxpayer"`
	Spouse             *Person             `json:"spouse,omitempty"`
	Address            Address             `json:"address"`
	Dependents         []Dependent         `json:"dependents,omitempty"`
	W2Income           []W2Income          `json:"w2_income,omitempty"`
	Form1099INT        []Form1099INT       `json:"form_1099_int,omitempty"`
	Form1099DIV        []Form1099DIV       `json:"form_1099_div,omitempty"`
	ScheduleC          *ScheduleCBusiness  `json:"schedule_c,omitempty"`
	DeductionType      string              `json:"deduction_type,omitempty"`
	ItemizedDeductions *ItemizedDeductions `json:"itemized_deductions,omitempty"`
	DirectDeposit      *DirectDeposit      `json:"direct_deposit,omitempty"`
	TaxpayerSignature  bool                `json:"taxpayer_signature,omitempty"`
	SpouseSignature    bool                `json:"spouse_signature,omitempty"`
}

// TotalWagesCents sums wages across all W-2 records
func (r *TaxReturn) TotalWagesCents() int64 {
	var total int64
	for _, w2 := range r.W2Income {
		total += w2.WagesCents
	}
	return total
}

// TotalWithholdingCents sums federal withholding across all W-2 records
func (r *TaxReturn) TotalWithholdingCents() int64 {
	var total int64
	for _, w2 := range r.W2Income {
		total += w2.FederalWithholdingCents
	}
	return total
}

// TotalInterestCents sums interest income across all 1099-INT records
func (r *TaxReturn) TotalInterestCents() int64 {
	var total int64
	for _, f := range r.Form1099INT {
		total += f.InterestIncomeCents
	}
	return total
}

// TotalDividendsCents sums ordinary dividends across all 1099-DIV records
func (r *TaxReturn) TotalDividendsCents() int64 {
	var total int64
	for _, f := range r.Form1099DIV {
		total += f.OrdinaryDividendsCents
	}
	return total
}
