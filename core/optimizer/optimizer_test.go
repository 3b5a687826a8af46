package optimizer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"adshare/core/report"
	"adshare/core/share"
	"adshare/core/types"
	"adshare/core/ui"
)

func ptr(v float64) *float64 { return &v }

// fakeUpdater records bid updates and can fail specific keywords.
type fakeUpdater struct {
	updates map[int64]types.Money
	failIDs map[int64]bool
}

func newFakeUpdater() *fakeUpdater {
	return &fakeUpdater{
		updates: make(map[int64]types.Money),
		failIDs: make(map[int64]bool),
	}
}

func (f *fakeUpdater) UpdateKeywordBid(ctx context.Context, campaignID, adGroupID, keywordID int64, bid types.Money) error {
	if f.failIDs[keywordID] {
		return errors.New("server rejected update")
	}
	f.updates[keywordID] = bid
	return nil
}

func testRecords() []*share.Record {
	return []*share.Record{
		{KeywordID: 1, Keyword: "photo editor", CurrentBid: types.NewMoney("2.00", types.CurrencyUSD), HighShare: ptr(0.05)},
		{KeywordID: 2, Keyword: "collage maker", CurrentBid: types.NewMoney("1.00", types.CurrencyUSD), HighShare: ptr(0.25)},
		{KeywordID: 3, Keyword: "filters", CurrentBid: types.NewMoney("3.00", types.CurrencyUSD), HighShare: ptr(0.40)},
	}
}

func testIndex() report.BidIndex {
	return report.BidIndex{
		1: {CampaignID: 11, AdGroupID: 21},
		2: {CampaignID: 12, AdGroupID: 22},
		3: {CampaignID: 13, AdGroupID: 23},
	}
}

func newTestOptimizer(updater *fakeUpdater, input string) *Optimizer {
	w := ui.NewWriter(&bytes.Buffer{}, true)
	return New(updater, testIndex(), w, strings.NewReader(input))
}

func TestCandidatesFiltersAndSorts(t *testing.T) {
	records := []*share.Record{
		{KeywordID: 1, CurrentBid: types.NewMoney("2.00", types.CurrencyUSD), HighShare: ptr(0.40)},
		{KeywordID: 2, CurrentBid: types.NewMoney("2.00", types.CurrencyUSD), HighShare: ptr(0.60)}, // above cutoff
		{KeywordID: 3, CurrentBid: types.NewMoney("2.00", types.CurrencyUSD), HighShare: nil},       // unknown share
		{KeywordID: 4, CurrentBid: types.NewMoney("0.00", types.CurrencyUSD), HighShare: ptr(0.05)}, // zero bid, no raise
		{KeywordID: 5, CurrentBid: types.NewMoney("1.00", types.CurrencyUSD), HighShare: ptr(0.10)},
	}

	got := Candidates(records, 50.0)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	// Sorted lowest share first.
	if got[0].KeywordID != 5 || got[1].KeywordID != 1 {
		t.Errorf("candidate order = [%d %d], want [5 1]", got[0].KeywordID, got[1].KeywordID)
	}
}

func TestRunAcceptAppliesSuggestedBid(t *testing.T) {
	updater := newFakeUpdater()
	opt := newTestOptimizer(updater, "y\nn\nn\n")

	summary := opt.Run(context.Background(), testRecords())

	if summary.Updated != 1 || summary.Skipped != 2 {
		t.Fatalf("summary = %+v, want 1 updated, 2 skipped", summary)
	}
	// 0.05 share tier: 2.00 * 1.50.
	if got := updater.updates[1].Amount.StringFixed(2); got != "3.00" {
		t.Errorf("applied bid = %s, want 3.00", got)
	}
}

func TestRunCustomBid(t *testing.T) {
	updater := newFakeUpdater()
	opt := newTestOptimizer(updater, "c\n2.75\nq\n")

	summary := opt.Run(context.Background(), testRecords())

	if summary.Updated != 1 {
		t.Fatalf("summary = %+v, want 1 updated", summary)
	}
	got := updater.updates[1]
	if got.Amount.StringFixed(2) != "2.75" {
		t.Errorf("custom bid = %s, want 2.75", got.Amount.StringFixed(2))
	}
	if got.Currency != types.CurrencyUSD {
		t.Errorf("custom bid currency = %s, want the keyword's currency", got.Currency)
	}
}

func TestRunCustomBidParseErrorSkipsAndContinues(t *testing.T) {
	updater := newFakeUpdater()
	opt := newTestOptimizer(updater, "c\nnot-a-number\ny\nn\n")

	summary := opt.Run(context.Background(), testRecords())

	if summary.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 (bad input counts as skip)", summary.Skipped)
	}
	if summary.Updated != 1 {
		t.Errorf("updated = %d, want 1 (loop continues after parse error)", summary.Updated)
	}
	if _, ok := updater.updates[2]; !ok {
		t.Error("second keyword should have been updated after the parse error")
	}
}

func TestRunQuitStopsEarly(t *testing.T) {
	updater := newFakeUpdater()
	opt := newTestOptimizer(updater, "q\n")

	summary := opt.Run(context.Background(), testRecords())

	if summary.Updated != 0 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want nothing processed after quit", summary)
	}
	if len(updater.updates) != 0 {
		t.Errorf("updates = %d, want 0", len(updater.updates))
	}
}

func TestRunUpdateFailureDoesNotAbort(t *testing.T) {
	updater := newFakeUpdater()
	updater.failIDs[1] = true
	opt := newTestOptimizer(updater, "y\ny\ny\n")

	summary := opt.Run(context.Background(), testRecords())

	if summary.Failed != 1 {
		t.Errorf("failed = %d, want 1", summary.Failed)
	}
	if summary.Updated != 2 {
		t.Errorf("updated = %d, want 2 (failure on one keyword does not stop the walk)", summary.Updated)
	}
}

func TestRunDryRunPromptsNothing(t *testing.T) {
	updater := newFakeUpdater()
	// No input at all: dry run must not read from stdin.
	opt := newTestOptimizer(updater, "")
	opt.DryRun = true

	summary := opt.Run(context.Background(), testRecords())

	if summary.Updated != 0 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want all zero in dry run", summary)
	}
	if len(updater.updates) != 0 {
		t.Errorf("updates = %d, want 0 in dry run", len(updater.updates))
	}
}

func TestRunEOFStopsWalk(t *testing.T) {
	updater := newFakeUpdater()
	opt := newTestOptimizer(updater, "y\n") // input ends after first action

	summary := opt.Run(context.Background(), testRecords())

	if summary.Updated != 1 {
		t.Errorf("updated = %d, want 1", summary.Updated)
	}
	if len(updater.updates) != 1 {
		t.Errorf("updates = %d, want 1 (EOF treated as quit)", len(updater.updates))
	}
}
