package rules

import (
	"taxfile-api/internal/types/business"
)

// TaxBracket is one rung of a progressive rate schedule. UpToCents is the
// upper bound of the bracket in cents; 0 means no upper bound (top bracket).
type TaxBracket struct {
	UpToCents       int64
	RateBasisPoints int64
}

// EITCParams holds the earned income credit parameters for one
// dependent-count band within a tax year.
type EITCParams struct {
	PhaseInRateBasisPoints  int64
	MaxCreditCents          int64
	PhaseOutRateBasisPoints int64
	PhaseOutStartCents      int64 // single, HoH, QSS
	PhaseOutStartMFJCents   int64
}

// CTCParams holds the child tax credit parameters for one tax year.
type CTCParams struct {
	PerQualifyingChildCents    int64
	PerOtherDependentCents     int64
	RefundableLimitPerChildCents int64 // ACTC cap per qualifying child
	EarnedIncomeThresholdCents int64   // ACTC earned income floor
	RefundableRateBasisPoints  int64   // ACTC rate on earned income over the floor
	QualifyingChildAgeLimit    int     // strictly under this age at year end
}

// YearRules bundles every policy table for a single tax year. Adding a tax
// year is a new entry in rulesByYear, not a code change.
type YearRules struct {
	Year                        int
	StandardDeductionCents      map[string]int64
	Brackets                    map[string][]TaxBracket
	EITCByDependentCount        []EITCParams // index 0..3, 3 means three or more
	EITCInvestmentIncomeLimitCents int64
	CTC                         CTCParams
}

// rulesByYear is write-once at init and read-only afterward, so concurrent
// lookups need no synchronization.
var rulesByYear = map[int]*YearRules{
	2024: rules2024,
}

// LatestYear is the most recent tax year with a rules table.
const LatestYear = 2024

var rules2024 = &YearRules{
	Year: 2024,
	StandardDeductionCents: map[string]int64{
		business.FilingStatusSingle:                    1_460_000,
		business.FilingStatusMarriedFilingJointly:      2_920_000,
		business.FilingStatusMarriedFilingSeparately:   1_460_000,
		business.FilingStatusHeadOfHousehold:           2_190_000,
		business.FilingStatusQualifyingSurvivingSpouse: 2_920_000,
	},
	Brackets: map[string][]TaxBracket{
		business.FilingStatusSingle: {
			{UpToCents: 1_160_000, RateBasisPoints: 1000},
			{UpToCents: 4_715_000, RateBasisPoints: 1200},
			{UpToCents: 10_052_500, RateBasisPoints: 2200},
			{UpToCents: 19_195_000, RateBasisPoints: 2400},
			{UpToCents: 24_372_500, RateBasisPoints: 3200},
			{UpToCents: 60_935_000, RateBasisPoints: 3500},
			{UpToCents: 0, RateBasisPoints: 3700},
		},
		business.FilingStatusMarriedFilingJointly: {
			{UpToCents: 2_320_000, RateBasisPoints: 1000},
			{UpToCents: 9_430_000, RateBasisPoints: 1200},
			{UpToCents: 20_105_000, RateBasisPoints: 2200},
			{UpToCents: 38_390_000, RateBasisPoints: 2400},
			{UpToCents: 48_745_000, RateBasisPoints: 3200},
			{UpToCents: 73_120_000, RateBasisPoints: 3500},
			{UpToCents: 0, RateBasisPoints: 3700},
		},
		business.FilingStatusMarriedFilingSeparately: {
			{UpToCents: 1_160_000, RateBasisPoints: 1000},
			{UpToCents: 4_715_000, RateBasisPoints: 1200},
			{UpToCents: 10_052_500, RateBasisPoints: 2200},
			{UpToCents: 19_195_000, RateBasisPoints: 2400},
			{UpToCents: 24_372_500, RateBasisPoints: 3200},
			{UpToCents: 36_560_000, RateBasisPoints: 3500},
			{UpToCents: 0, RateBasisPoints: 3700},
		},
		business.FilingStatusHeadOfHousehold: {
			{UpToCents: 1_655_000, RateBasisPoints: 1000},
			{UpToCents: 6_310_000, RateBasisPoints: 1200},
			{UpToCents: 10_050_000, RateBasisPoints: 2200},
			{UpToCents: 19_195_000, RateBasisPoints: 2400},
			{UpToCents: 24_370_000, RateBasisPoints: 3200},
			{UpToCents: 60_935_000, RateBasisPoints: 3500},
			{UpToCents: 0, RateBasisPoints: 3700},
		},
		business.FilingStatusQualifyingSurvivingSpouse: {
			{UpToCents: 2_320_000, RateBasisPoints: 1000},
			{UpToCents: 9_430_000, RateBasisPoints: 1200},
			{UpToCents: 20_105_000, RateBasisPoints: 2200},
			{UpToCents: 38_390_000, RateBasisPoints: 2400},
			{UpToCents: 48_745_000, RateBasisPoints: 3200},
			{UpToCents: 73_120_000, RateBasisPoints: 3500},
			{UpToCents: 0, RateBasisPoints: 3700},
		},
	},
	EITCByDependentCount: []EITCParams{
		{PhaseInRateBasisPoints: 765, MaxCreditCents: 63_200, PhaseOutRateBasisPoints: 765, PhaseOutStartCents: 1_033_000, PhaseOutStartMFJCents: 1_725_000},
		{PhaseInRateBasisPoints: 3400, MaxCreditCents: 421_300, PhaseOutRateBasisPoints: 1598, PhaseOutStartCents: 2_272_000, PhaseOutStartMFJCents: 2_964_000},
		{PhaseInRateBasisPoints: 4000, MaxCreditCents: 696_000, PhaseOutRateBasisPoints: 2106, PhaseOutStartCents: 2_272_000, PhaseOutStartMFJCents: 2_964_000},
		{PhaseInRateBasisPoints: 4500, MaxCreditCents: 783_000, PhaseOutRateBasisPoints: 2106, PhaseOutStartCents: 2_272_000, PhaseOutStartMFJCents: 2_964_000},
	},
	EITCInvestmentIncomeLimitCents: 1_160_000,
	CTC: CTCParams{
		PerQualifyingChildCents:      200_000,
		PerOtherDependentCents:       50_000,
		RefundableLimitPerChildCents: 170_000,
		EarnedIncomeThresholdCents:   250_000,
		RefundableRateBasisPoints:    1500,
		QualifyingChildAgeLimit:      17,
	},
}
