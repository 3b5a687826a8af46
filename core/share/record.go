// Package share holds the impression share data model and the bid
// suggestion logic built on top of it.
package share

import (
	"fmt"

	"go.uber.org/zap"

	"adshare/core/types"
	"adshare/internal/logging"
)

// Record is the impression share data for one keyword, joined with its
// current bid. Low/high shares are a bucketed range in [0, 1]; either end
// may be absent when the report has no data for it.
type Record struct {
	CampaignID   int64
	CampaignName string
	AdGroupID    int64
	AdGroupName  string
	KeywordID    int64
	Keyword      string
	Country      string
	CurrentBid   types.Money
	LowShare     *float64
	HighShare    *float64
	Rank         *int
	SearchPop    *int
}

// ClampShare normalizes an impression share value into [0, 1].
// The API occasionally reports shares as percentages or slightly out of
// range; out-of-range values are clamped rather than rejected.
func ClampShare(v *float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v
	if s >= 0 && s <= 1 {
		return v
	}
	logging.Debug("clamping out-of-range impression share", zap.Float64("value", s))
	if s > 1 {
		s = 1
	} else if s < 0 {
		s = 0
	}
	return &s
}

// ShareRange formats the impression share bucket as a percentage range,
// e.g. "5-12%". Returns "N/A" when neither end is present.
func (r *Record) ShareRange() string {
	if r.LowShare == nil && r.HighShare == nil {
		return "N/A"
	}
	low := "0"
	if r.LowShare != nil && *r.LowShare != 0 {
		low = fmt.Sprintf("%d", int(*r.LowShare*100))
	}
	high := "?"
	if r.HighShare != nil && *r.HighShare != 0 {
		high = fmt.Sprintf("%d", int(*r.HighShare*100))
	}
	return low + "-" + high + "%"
}

// RankString formats the keyword rank for display.
func (r *Record) RankString() string {
	if r.Rank == nil || *r.Rank == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", *r.Rank)
}

// BidString formats the current bid for display.
func (r *Record) BidString() string {
	return r.CurrentBid.String()
}

// SuggestedBidString formats the suggested bid, or "-" when the
// suggestion leaves the bid unchanged.
func (r *Record) SuggestedBidString() string {
	suggested := r.SuggestedBid()
	if suggested.Equal(r.CurrentBid) {
		return "-"
	}
	return suggested.String()
}
