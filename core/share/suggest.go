package share

import (
	"github.com/shopspring/decimal"

	"adshare/core/types"
)

// Bid increase multipliers by impression share tier. Keywords winning
// under 10% of auctions get the most aggressive raise.
var (
	factorLow  = decimal.RequireFromString("1.50") // share <= 10%
	factorMid  = decimal.RequireFromString("1.25") // 10% < share <= 30%
	factorHigh = decimal.RequireFromString("1.10") // 30% < share <= 50%
)

// SuggestedBid returns a bid suggestion derived from the high end of the
// impression share bucket:
//
//	0-10% share:  50% increase
//	10-30% share: 25% increase
//	30-50% share: 10% increase
//	50%+ or unknown: keep current bid
//
// Arithmetic stays in exact decimals; callers round for display.
func (r *Record) SuggestedBid() types.Money {
	if r.HighShare == nil || *r.HighShare >= 0.5 {
		return r.CurrentBid
	}

	highPct := *r.HighShare * 100
	switch {
	case highPct <= 10:
		return r.CurrentBid.Mul(factorLow)
	case highPct <= 30:
		return r.CurrentBid.Mul(factorMid)
	case highPct <= 50:
		return r.CurrentBid.Mul(factorHigh)
	}
	return r.CurrentBid
}
