package share

import (
	"testing"

	"github.com/peterldowns/testy/check"

	"adshare/core/types"
)

func TestShareRange(t *testing.T) {
	tests := []struct {
		name     string
		low      *float64
		high     *float64
		expected string
	}{
		{name: "both present", low: ptr(0.05), high: ptr(0.12), expected: "5-12%"},
		{name: "both absent", low: nil, high: nil, expected: "N/A"},
		{name: "low absent", low: nil, high: ptr(0.40), expected: "0-40%"},
		{name: "high absent", low: ptr(0.20), high: nil, expected: "20-?%"},
		{name: "zero low", low: ptr(0.0), high: ptr(0.10), expected: "0-10%"},
		{name: "full range", low: ptr(0.90), high: ptr(1.0), expected: "90-100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{LowShare: tt.low, HighShare: tt.high}
			check.Equal(t, tt.expected, r.ShareRange())
		})
	}
}

func TestClampShare(t *testing.T) {
	check.Equal(t, (*float64)(nil), ClampShare(nil))

	in := 0.35
	check.Equal(t, 0.35, *ClampShare(&in))

	over := 1.4
	check.Equal(t, 1.0, *ClampShare(&over))

	under := -0.2
	check.Equal(t, 0.0, *ClampShare(&under))
}

func TestRankString(t *testing.T) {
	check.Equal(t, "N/A", (&Record{}).RankString())

	rank := 3
	check.Equal(t, "3", (&Record{Rank: &rank}).RankString())

	zero := 0
	check.Equal(t, "N/A", (&Record{Rank: &zero}).RankString())
}

func TestBidString(t *testing.T) {
	r := &Record{CurrentBid: types.NewMoney("2.5", types.CurrencyEUR)}
	check.Equal(t, "2.50 EUR", r.BidString())
}
