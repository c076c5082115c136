package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taxfile-api/internal/logger"
	"taxfile-api/internal/types/business"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestHandler() *TaxHandler {
	return NewTaxHandler(NewCommonServices("123456"))
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler(c)
	return w
}

func testReturn() business.TaxReturn {
	return business.TaxReturn{
		TaxYear:      2024,
		FilingStatus: business.FilingStatusSingle,
		Taxpayer: business.Person{
			FirstName:   "Avery",
			LastName:    "Collins",
			SSN:         "123-45-6789",
			DateOfBirth: "1985-04-12",
		},
		Address: business.Address{
			Street: "12 Elm St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62704",
		},
		W2Income: []business.W2Income{
			{Employer: "Initech", WagesCents: 5_000_000, FederalWithholdingCents: 400_000},
		},
		TaxpayerSignature: true,
	}
}

func TestCalculateTaxReturn(t *testing.T) {
	handler := newTestHandler()

	t.Run("successful calculation", func(t *testing.T) {
		w := performJSON(t, handler.CalculateTaxReturn, http.MethodPost, "/api/v1/tax/calculate", testReturn())
		assert.Equal(t, http.StatusOK, w.Code)

		var resp CalculateTaxResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Calculation)
		assert.Equal(t, int64(5_000_000), resp.Calculation.TotalIncomeCents)
		assert.Equal(t, int64(401_600), resp.Calculation.TaxBeforeCreditsCents)
		assert.Equal(t, int64(1_600), resp.Calculation.AmountOwedCents)
		assert.Equal(t, int64(5_000_000), resp.Lines["line9"])
		assert.NotEmpty(t, resp.Metadata.CalculationID)
		assert.Equal(t, 2024, resp.Metadata.RulesYear)
		assert.Equal(t, "123456", resp.Metadata.EFIN)
	})

	t.Run("invalid filing status is a 400", func(t *testing.T) {
		ret := testReturn()
		ret.FilingStatus = "married_filing_happily"

		w := performJSON(t, handler.CalculateTaxReturn, http.MethodPost, "/api/v1/tax/calculate", ret)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid filing status", resp.Error)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/tax/calculate", bytes.NewReader([]byte("{not json")))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.CalculateTaxReturn(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown year falls back to the latest table", func(t *testing.T) {
		ret := testReturn()
		ret.TaxYear = 2030

		w := performJSON(t, handler.CalculateTaxReturn, http.MethodPost, "/api/v1/tax/calculate", ret)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp CalculateTaxResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2024, resp.Metadata.RulesYear)
	})
}

func TestGetStandardDeductions(t *testing.T) {
	handler := newTestHandler()

	w := performJSON(t, handler.GetStandardDeductions, http.MethodGet, "/api/v1/tax/calculate", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp StandardDeductionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.TaxYear)
	assert.Equal(t, int64(1_460_000), resp.StandardDeductionsCents[business.FilingStatusSingle])
	assert.Equal(t, int64(2_920_000), resp.StandardDeductionsCents[business.FilingStatusMarriedFilingJointly])
	assert.Len(t, resp.StandardDeductionsCents, len(business.FilingStatuses))
}

func TestGetTaxBrackets(t *testing.T) {
	handler := newTestHandler()

	t.Run("returns the schedule for a filing status", func(t *testing.T) {
		w := performJSON(t, handler.GetTaxBrackets, http.MethodGet, "/api/v1/tax/brackets?filing_status=single", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp TaxBracketsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "single", resp.FilingStatus)
		assert.Equal(t, 2024, resp.TaxYear)
		require.Len(t, resp.Brackets, 7)
		assert.Equal(t, int64(1000), resp.Brackets[0].RateBasisPoints)
		assert.Equal(t, int64(3700), resp.Brackets[6].RateBasisPoints)
		assert.Zero(t, resp.Brackets[6].UpToCents, "top bracket is unbounded")
	})

	t.Run("unknown filing status is a 400", func(t *testing.T) {
		w := performJSON(t, handler.GetTaxBrackets, http.MethodGet, "/api/v1/tax/brackets?filing_status=widowed", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric year is a 400", func(t *testing.T) {
		w := performJSON(t, handler.GetTaxBrackets, http.MethodGet, "/api/v1/tax/brackets?filing_status=single&year=soon", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestValidateTaxReturnEndpoint(t *testing.T) {
	handler := newTestHandler()

	t.Run("full return validation", func(t *testing.T) {
		w := performJSON(t, handler.ValidateTaxReturn, http.MethodPost, "/api/v1/tax/validate", testReturn())
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ValidateTaxResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Zero(t, resp.ErrorCount)
		assert.NotNil(t, resp.Errors)
		assert.NotNil(t, resp.Warnings)
	})

	t.Run("invalid return reports every problem", func(t *testing.T) {
		ret := testReturn()
		ret.FilingStatus = business.FilingStatusMarriedFilingJointly
		ret.Taxpayer.SSN = "000-12-3456"
		ret.TaxpayerSignature = false

		w := performJSON(t, handler.ValidateTaxReturn, http.MethodPost, "/api/v1/tax/validate", ret)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ValidateTaxResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Equal(t, len(resp.Errors), resp.ErrorCount)
		assert.GreaterOrEqual(t, resp.ErrorCount, 4)
	})

	t.Run("single field form", func(t *testing.T) {
		tests := []struct {
			name  string
			field string
			value string
			valid bool
		}{
			{"valid ssn", "ssn", "123-45-6789", true},
			{"invalid ssn area", "ssn", "000-12-3456", false},
			{"valid ein", "ein", "12-3456789", true},
			{"valid routing number", "routing_number", "021000021", true},
			{"routing checksum failure", "routing_number", "123456789", false},
			{"valid account number", "account_number", "123456789", true},
			{"zip plus four", "zip", "62704-1234", true},
			{"short zip", "zip", "627", false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := performJSON(t, handler.ValidateTaxReturn, http.MethodPost, "/api/v1/tax/validate",
					FieldValidationRequest{Field: tt.field, Value: tt.value})
				assert.Equal(t, http.StatusOK, w.Code)

				var resp FieldValidationResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.valid, resp.Valid)
				assert.Equal(t, tt.field, resp.Field)
			})
		}
	})

	t.Run("unknown field is a 400", func(t *testing.T) {
		w := performJSON(t, handler.ValidateTaxReturn, http.MethodPost, "/api/v1/tax/validate",
			FieldValidationRequest{Field: "phone", Value: "555-0100"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/tax/validate", bytes.NewReader([]byte("[null")))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.ValidateTaxReturn(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	w := performJSON(t, HealthCheck, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
