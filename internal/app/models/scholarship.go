package models

// ScholarshipCalculation is the derived fee breakdown for a course. It is
// computed on demand and never stored.
type ScholarshipCalculation struct {
	OriginalFee           int64 `json:"originalFee"`
	FeeAfterScholarship   int64 `json:"feeAfterScholarship"`
	AnnualSavings         int64 `json:"annualSavings"`
	TotalSavings          int64 `json:"totalSavings"`
	ScholarshipPercentage int   `json:"scholarshipPercentage"`
	Duration              int   `json:"duration"` // Years
}
