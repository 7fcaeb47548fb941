// Package model defines the value objects produced by the allocation pipeline.
package model

// CampaignSpend holds the allocated spend and projected return for one campaign.
type CampaignSpend struct {
	Name   string
	Spend  float64
	Return float64
}

// Allocation is a budget split across campaigns plus the combined
// projected return at that split.
type Allocation struct {
	Budget         float64
	Campaigns      []CampaignSpend
	CombinedReturn float64
}

// TestResult holds the outcome of the two-sample significance test on
// historical campaign performance.
type TestResult struct {
	TStat       float64
	PValue      float64
	Significant bool
}

// Report is the full structured pipeline output consumed by the
// presentation adapters. All fields are plain numbers; formatting is
// the adapter's job.
type Report struct {
	Allocation Allocation
	Test       TestResult

	ForecastCampaign string
	ForecastMonths   int
	ForecastRevenue  float64
}
