package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"taxfile-api/internal/helpers"
	"taxfile-api/internal/rules"
	"taxfile-api/internal/services"
	"taxfile-api/internal/types/business"
)

// TaxHandler serves the calculation and validation endpoints. The handler
// owns only request/response plumbing; all tax semantics live in the
// services it delegates to.
type TaxHandler struct {
	common     *CommonServices
	calculator *services.Form1040Calculator
	validator  *services.ReturnValidator
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{
		common:     common,
		calculator: services.NewForm1040Calculator(),
		validator:  services.NewReturnValidator(),
	}
}

// CalculationMetadata is audit information attached to a calculation
// response. It is the only non-deterministic part of the response.
type CalculationMetadata struct {
	CalculationID string    `json:"calculation_id"`
	CalculatedAt  time.Time `json:"calculated_at"`
	RulesYear     int       `json:"rules_year"`
	EFIN          string    `json:"efin,omitempty"`
}

// CalculateTaxResponse is the response body for a successful calculation
type CalculateTaxResponse struct {
	Success     bool                     `json:"success"`
	Calculation *business.Form1040Result `json:"calculation"`
	Lines       map[string]int64         `json:"lines"`
	Metadata    CalculationMetadata      `json:"metadata"`
}

// StandardDeductionsResponse is the static reference response for the
// standard deduction table
type StandardDeductionsResponse struct {
	TaxYear                 int              `json:"tax_year"`
	StandardDeductionsCents map[string]int64 `json:"standard_deductions_cents"`
}

// BracketResponse is one rung of a rate schedule in a brackets response
type BracketResponse struct {
	UpToCents       int64 `json:"up_to_cents,omitempty"`
	RateBasisPoints int64 `json:"rate_basis_points"`
}

// TaxBracketsResponse is the reference response for a rate schedule
type TaxBracketsResponse struct {
	TaxYear      int               `json:"tax_year"`
	FilingStatus string            `json:"filing_status"`
	Brackets     []BracketResponse `json:"brackets"`
}

// FieldValidationRequest is the single-field form of the validate endpoint
type FieldValidationRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldValidationResponse is the single-field validation result
type FieldValidationResponse struct {
	Valid bool   `json:"valid"`
	Field string `json:"field"`
}

// ValidateTaxResponse is the full-return validation result
type ValidateTaxResponse struct {
	Valid        bool                       `json:"valid"`
	Errors       []business.ValidationIssue `json:"errors"`
	Warnings     []business.ValidationIssue `json:"warnings"`
	ErrorCount   int                        `json:"error_count"`
	WarningCount int                        `json:"warning_count"`
}

// CalculateTaxReturn godoc
// @Summary Calculate a tax return
// @Description Computes every derived Form 1040 line from the submitted return
// @Tags tax
// @Accept json
// @Produce json
// @Param tax_return body business.TaxReturn true "Tax return"
// @Success 200 {object} CalculateTaxResponse
// @Failure 400 {object} ErrorResponse
// @Router /tax/calculate [post]
func (h *TaxHandler) CalculateTaxReturn(c *gin.Context) {
	var ret business.TaxReturn
	if err := c.ShouldBindJSON(&ret); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.calculator.Calculate(&ret)
	if err != nil {
		// Caller-input-driven: an unrecognized filing status is a 4xx,
		// never a 5xx.
		if errors.Is(err, services.ErrInvalidFilingStatus) {
			sendError(c, http.StatusBadRequest, "Invalid filing status", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	sendSuccess(c, http.StatusOK, CalculateTaxResponse{
		Success:     true,
		Calculation: result,
		Lines:       result.Lines(),
		Metadata: CalculationMetadata{
			CalculationID: uuid.New().String(),
			CalculatedAt:  time.Now().UTC(),
			RulesYear:     rules.ForYear(ret.TaxYear).Year,
			EFIN:          h.common.efin,
		},
	})
}

// GetStandardDeductions godoc
// @Summary Standard deduction table
// @Description Returns the standard deduction for every filing status in the current tax year
// @Tags tax
// @Produce json
// @Success 200 {object} StandardDeductionsResponse
// @Router /tax/calculate [get]
func (h *TaxHandler) GetStandardDeductions(c *gin.Context) {
	sendSuccess(c, http.StatusOK, StandardDeductionsResponse{
		TaxYear:                 rules.LatestYear,
		StandardDeductionsCents: rules.StandardDeductionTable(rules.LatestYear),
	})
}

// GetTaxBrackets godoc
// @Summary Tax bracket table
// @Description Returns the progressive rate schedule for a filing status and tax year
// @Tags tax
// @Produce json
// @Param filing_status query string true "Filing status"
// @Param year query int false "Tax year (defaults to the current table year)"
// @Success 200 {object} TaxBracketsResponse
// @Failure 400 {object} ErrorResponse
// @Router /tax/brackets [get]
func (h *TaxHandler) GetTaxBrackets(c *gin.Context) {
	filingStatus := c.Query("filing_status")
	year := rules.LatestYear
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	brackets, err := rules.BracketsFor(filingStatus, year)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid filing status", err)
		return
	}

	resp := TaxBracketsResponse{
		TaxYear:      rules.ForYear(year).Year,
		FilingStatus: filingStatus,
		Brackets:     make([]BracketResponse, 0, len(brackets)),
	}
	for _, b := range brackets {
		resp.Brackets = append(resp.Brackets, BracketResponse{
			UpToCents:       b.UpToCents,
			RateBasisPoints: b.RateBasisPoints,
		})
	}
	sendSuccess(c, http.StatusOK, resp)
}

// ValidateTaxReturn godoc
// @Summary Validate a tax return or a single field
// @Description A body with a "field" key routes to the matching standalone validator; a full return body runs the complete check battery
// @Tags tax
// @Accept json
// @Produce json
// @Success 200 {object} ValidateTaxResponse
// @Failure 400 {object} ErrorResponse
// @Router /tax/validate [post]
func (h *TaxHandler) ValidateTaxReturn(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Unable to read request body", err)
		return
	}

	// A {field, value} body selects the single-field form
	var probe struct {
		Field *string `json:"field"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if probe.Field != nil {
		h.validateSingleField(c, body)
		return
	}

	var ret business.TaxReturn
	if err := json.Unmarshal(body, &ret); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.validator.ValidateTaxReturn(&ret)
	sendSuccess(c, http.StatusOK, ValidateTaxResponse{
		Valid:        result.Valid,
		Errors:       result.Errors,
		Warnings:     result.Warnings,
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
	})
}

// validateSingleField routes a {field, value} body to the standalone
// validator for that field. The validators return false on malformed input
// rather than failing, so this path always produces a 200 for known fields.
func (h *TaxHandler) validateSingleField(c *gin.Context, body []byte) {
	var req FieldValidationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var valid bool
	switch req.Field {
	case "ssn":
		valid = helpers.IsSSNValid(req.Value)
	case "ein":
		valid = helpers.IsEINValid(req.Value)
	case "routing_number":
		valid = helpers.IsRoutingNumberValid(req.Value)
	case "account_number":
		valid = helpers.IsBankAccountNumberValid(req.Value)
	case "zip":
		valid = helpers.IsZipValid(req.Value)
	default:
		sendError(c, http.StatusBadRequest, "Unknown validation field", errors.Errorf("field %q", req.Field))
		return
	}

	sendSuccess(c, http.StatusOK, FieldValidationResponse{Valid: valid, Field: req.Field})
}
