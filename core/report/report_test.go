package report

import (
	"context"
	"testing"
	"time"

	"adshare/core/types"
)

func TestDateRangeEndsYesterday(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	start, end, clamped := DateRange(7, now)
	if clamped {
		t.Error("7 days should not clamp")
	}
	if got := end.Format("2006-01-02"); got != "2026-08-29" {
		t.Errorf("end = %s, want 2026-08-29", got)
	}
	// Inclusive range: 7 days back from yesterday.
	if got := start.Format("2006-01-02"); got != "2026-08-23" {
		t.Errorf("start = %s, want 2026-08-23", got)
	}
}

func TestDateRangeClampsAt30Days(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	start, end, clamped := DateRange(45, now)
	if !clamped {
		t.Fatal("45 days should clamp")
	}
	if got := end.Format("2006-01-02"); got != "2026-08-29" {
		t.Errorf("end = %s, want 2026-08-29", got)
	}
	if got := start.Format("2006-01-02"); got != "2026-07-31" {
		t.Errorf("start = %s, want 2026-07-31 (end - 29 days)", got)
	}
}

func TestDateRangeExactly30DaysDoesNotClamp(t *testing.T) {
	_, _, clamped := DateRange(30, time.Now())
	if clamped {
		t.Error("30 days is within the limit and should not clamp")
	}
}

func fptr(v float64) *float64 { return &v }

func TestRowShareRange(t *testing.T) {
	tests := []struct {
		name     string
		low      *float64
		high     *float64
		expected string
	}{
		{name: "both present", low: fptr(0.05), high: fptr(0.12), expected: "5-12%"},
		{name: "both absent", low: nil, high: nil, expected: "N/A"},
		{name: "low absent", low: nil, high: fptr(0.40), expected: "0-40%"},
		{name: "high absent", low: fptr(0.20), high: nil, expected: "20-?%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := &Row{LowImpressionShare: tt.low, HighImpressionShare: tt.high}
			if got := row.ShareRange(); got != tt.expected {
				t.Errorf("ShareRange() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRowRankDisplayDashWhenAbsent(t *testing.T) {
	if got := (&Row{}).RankDisplay(); got != "-" {
		t.Errorf("RankDisplay() = %q, want -", got)
	}

	zero := 0
	if got := (&Row{Rank: &zero}).RankDisplay(); got != "-" {
		t.Errorf("RankDisplay() = %q, want -", got)
	}

	rank := 3
	if got := (&Row{Rank: &rank}).RankDisplay(); got != "3" {
		t.Errorf("RankDisplay() = %q, want 3", got)
	}
}

func TestBuildRecordsJoinsBids(t *testing.T) {
	rep := &Report{Rows: []Row{
		{
			Metadata: RowMetadata{
				CampaignID: 1, CampaignName: "Brand",
				AdGroupID: 2, AdGroupName: "Exact",
				KeywordID: 3, Keyword: "photo editor", CountryOrRegion: "US",
			},
			LowImpressionShare:  fptr(0.05),
			HighImpressionShare: fptr(0.12),
		},
		{
			// No keyword id: dropped.
			Metadata: RowMetadata{CampaignID: 1, CampaignName: "Brand"},
		},
		{
			// Keyword missing from the index: kept with zero bid.
			Metadata: RowMetadata{
				CampaignID: 1, CampaignName: "Brand",
				AdGroupID: 2, KeywordID: 9, Keyword: "collage", CountryOrRegion: "GB",
			},
		},
	}}

	index := BidIndex{
		3: {Bid: types.NewMoney("2.50", types.CurrencyUSD), CampaignID: 1, AdGroupID: 2},
	}

	records := BuildRecords(rep, index)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].CurrentBid.String() != "2.50 USD" {
		t.Errorf("joined bid = %s, want 2.50 USD", records[0].CurrentBid)
	}
	if *records[0].HighShare != 0.12 {
		t.Errorf("high share = %v, want 0.12", *records[0].HighShare)
	}

	if !records[1].CurrentBid.IsZero() {
		t.Errorf("unmatched keyword bid = %s, want zero", records[1].CurrentBid)
	}
	if records[1].CurrentBid.Currency != types.CurrencyUSD {
		t.Errorf("fallback currency = %s, want USD", records[1].CurrentBid.Currency)
	}
}

func TestBuildRecordsClampsShares(t *testing.T) {
	rep := &Report{Rows: []Row{{
		Metadata:            RowMetadata{KeywordID: 1, Keyword: "kw"},
		HighImpressionShare: fptr(1.8),
	}}}

	records := BuildRecords(rep, BidIndex{})
	if *records[0].HighShare != 1.0 {
		t.Errorf("high share = %v, want clamped to 1.0", *records[0].HighShare)
	}
}

// fakeLister serves a small fixed hierarchy.
type fakeLister struct {
	campaigns    []types.Campaign
	adGroups     map[int64][]types.AdGroup
	keywords     map[int64][]types.Keyword
	keywordCalls int
}

func (f *fakeLister) ListCampaigns(ctx context.Context) ([]types.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeLister) ListAdGroups(ctx context.Context, campaignID int64) ([]types.AdGroup, error) {
	return f.adGroups[campaignID], nil
}

func (f *fakeLister) ListKeywords(ctx context.Context, campaignID, adGroupID int64) ([]types.Keyword, error) {
	f.keywordCalls++
	return f.keywords[adGroupID], nil
}

func newFakeLister() *fakeLister {
	bid := &types.MoneyWire{Amount: "1.25", Currency: "USD"}
	return &fakeLister{
		campaigns: []types.Campaign{
			{ID: 1, Name: "Brand - US"},
			{ID: 2, Name: "Generic"},
		},
		adGroups: map[int64][]types.AdGroup{
			1: {{ID: 10, CampaignID: 1, Name: "Exact"}},
			2: {{ID: 20, CampaignID: 2, Name: "Broad"}},
		},
		keywords: map[int64][]types.Keyword{
			10: {
				{ID: 100, AdGroupID: 10, Text: "photo editor", Bid: bid},
				{ID: 101, AdGroupID: 10, Text: "no bid set"},
			},
			20: {{ID: 200, AdGroupID: 20, Text: "collage", Bid: bid}},
		},
	}
}

func TestBuildBidIndexCollectsOnlyBidKeywords(t *testing.T) {
	lister := newFakeLister()

	index, err := BuildBidIndex(context.Background(), lister, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(index) != 2 {
		t.Fatalf("got %d entries, want 2 (keyword without bid excluded)", len(index))
	}

	entry, ok := index[100]
	if !ok {
		t.Fatal("keyword 100 missing from index")
	}
	if entry.CampaignID != 1 || entry.AdGroupID != 10 {
		t.Errorf("path = (%d, %d), want (1, 10)", entry.CampaignID, entry.AdGroupID)
	}
	if entry.Bid.String() != "1.25 USD" {
		t.Errorf("bid = %s, want 1.25 USD", entry.Bid)
	}
}

func TestBuildBidIndexCampaignPatternSkipsWalk(t *testing.T) {
	lister := newFakeLister()

	index, err := BuildBidIndex(context.Background(), lister, "Brand*", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(index) != 1 {
		t.Fatalf("got %d entries, want 1", len(index))
	}
	if _, ok := index[200]; ok {
		t.Error("keyword from non-matching campaign should not be indexed")
	}
	if lister.keywordCalls != 1 {
		t.Errorf("keyword list calls = %d, want 1 (skipped campaign not walked)", lister.keywordCalls)
	}
}

func TestBuildBidIndexReportsProgress(t *testing.T) {
	lister := newFakeLister()

	var calls [][2]int
	_, err := BuildBidIndex(context.Background(), lister, "", func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(calls) != 2 {
		t.Fatalf("progress calls = %d, want 2", len(calls))
	}
	if calls[1] != [2]int{2, 2} {
		t.Errorf("final progress = %v, want [2 2]", calls[1])
	}
}
