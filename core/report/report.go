// Package report builds the impression share dataset: the date-ranged
// report request, the bid lookup built from the campaign hierarchy, and
// the join producing share records.
package report

import (
	"fmt"
	"time"
)

// MaxLookbackDays is the API's report window limit.
const MaxLookbackDays = 30

// Granularity is the report aggregation granularity
type Granularity string

const (
	GranularityHourly  Granularity = "HOURLY"
	GranularityDaily   Granularity = "DAILY"
	GranularityWeekly  Granularity = "WEEKLY"
	GranularityMonthly Granularity = "MONTHLY"
)

// Request describes an impression share report
type Request struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity

	// CountryCodes filters the report; empty means all storefronts.
	CountryCodes []string
}

// Row is one keyword's impression share metrics
type Row struct {
	Metadata            RowMetadata `json:"metadata"`
	LowImpressionShare  *float64    `json:"lowImpressionShare"`
	HighImpressionShare *float64    `json:"highImpressionShare"`
	Rank                *int        `json:"rank"`
	SearchPopularity    *int        `json:"searchPopularity"`
}

// ShareRange formats the row's impression share bucket as a percentage
// range, e.g. "5-12%". Returns "N/A" when neither end is present.
func (r *Row) ShareRange() string {
	if r.LowImpressionShare == nil && r.HighImpressionShare == nil {
		return "N/A"
	}
	low := "0"
	if r.LowImpressionShare != nil && *r.LowImpressionShare != 0 {
		low = fmt.Sprintf("%d", int(*r.LowImpressionShare*100))
	}
	high := "?"
	if r.HighImpressionShare != nil && *r.HighImpressionShare != 0 {
		high = fmt.Sprintf("%d", int(*r.HighImpressionShare*100))
	}
	return low + "-" + high + "%"
}

// RankDisplay formats the rank for the report summary table, "-" when
// absent.
func (r *Row) RankDisplay() string {
	if r.Rank == nil || *r.Rank == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", *r.Rank)
}

// RowMetadata identifies the keyword a report row belongs to
type RowMetadata struct {
	CampaignID      int64  `json:"campaignId"`
	CampaignName    string `json:"campaignName"`
	AdGroupID       int64  `json:"adGroupId"`
	AdGroupName     string `json:"adGroupName"`
	KeywordID       int64  `json:"keywordId"`
	Keyword         string `json:"keyword"`
	CountryOrRegion string `json:"countryOrRegion"`
}

// Report is a completed impression share report
type Report struct {
	Rows []Row `json:"row"`
}

// DateRange resolves a lookback in days to an inclusive report window
// ending yesterday. Lookbacks over MaxLookbackDays clamp, and the
// returned flag tells the caller to warn.
func DateRange(days int, now time.Time) (start, end time.Time, clamped bool) {
	if days > MaxLookbackDays {
		days = MaxLookbackDays
		clamped = true
	}
	if days < 1 {
		days = 1
	}
	end = now.AddDate(0, 0, -1)
	start = end.AddDate(0, 0, -(days - 1))
	return start, end, clamped
}
