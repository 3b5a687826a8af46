package share

import (
	"sort"
	"strings"
)

// Filter selects records for display or optimization. Zero value matches
// everything.
type Filter struct {
	// Country is an exact country-code match, case-insensitive.
	Country string

	// CampaignPattern is a case-insensitive substring match on the
	// campaign name. A trailing or leading "*" wildcard is stripped.
	CampaignPattern string

	// MinShare keeps only records whose high share is strictly below the
	// threshold (percent, e.g. 30 keeps high share < 0.30). Records with
	// no high share are dropped.
	MinShare *float64

	// MaxShare behaves like MinShare; both express "share below X%".
	// MaxShare is the optimizer's candidate cutoff.
	MaxShare *float64
}

// Apply returns the records matching the filter, preserving order.
func (f Filter) Apply(records []*Record) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r *Record) bool {
	if f.Country != "" && !strings.EqualFold(f.Country, r.Country) {
		return false
	}
	if f.CampaignPattern != "" {
		pattern := strings.ToLower(strings.ReplaceAll(f.CampaignPattern, "*", ""))
		if !strings.Contains(strings.ToLower(r.CampaignName), pattern) {
			return false
		}
	}
	if f.MinShare != nil && !belowThreshold(r, *f.MinShare) {
		return false
	}
	if f.MaxShare != nil && !belowThreshold(r, *f.MaxShare) {
		return false
	}
	return true
}

// belowThreshold is an exclusive comparison: a high share exactly at the
// threshold does not match.
func belowThreshold(r *Record, percent float64) bool {
	if r.HighShare == nil {
		return false
	}
	return *r.HighShare < percent/100.0
}

// SortByShare orders records ascending by high share, missing shares
// first. Lowest share means most opportunity, so those surface at the top.
func SortByShare(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return highOrZero(records[i]) < highOrZero(records[j])
	})
}

func highOrZero(r *Record) float64 {
	if r.HighShare == nil {
		return 0
	}
	return *r.HighShare
}

// CountBelow returns how many records have a known high share strictly
// under the given percent.
func CountBelow(records []*Record, percent float64) int {
	n := 0
	for _, r := range records {
		if belowThreshold(r, percent) {
			n++
		}
	}
	return n
}
