package business

// ValidationIssue is a single finding against a specific field
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating a full tax return.
// Errors block filing; warnings do not.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// NewValidationResult returns an empty result with non-nil slices so that
// JSON output always carries arrays, never null.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:    true,
		Errors:   []ValidationIssue{},
		Warnings: []ValidationIssue{},
	}
}

// AddError records a filing-blocking finding and marks the result invalid
func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message})
	r.Valid = false
}

// AddWarning records a non-blocking finding
func (r *ValidationResult) AddWarning(field, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Message: message})
}
