// Package optimizer implements the interactive bid-raising walkthrough.
package optimizer

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"adshare/core/report"
	"adshare/core/share"
	"adshare/core/types"
	"adshare/core/ui"
	"adshare/internal/logging"
)

// BidUpdater is the slice of the API client the optimizer needs.
type BidUpdater interface {
	UpdateKeywordBid(ctx context.Context, campaignID, adGroupID, keywordID int64, bid types.Money) error
}

// Optimizer walks keyword candidates and applies bid updates one at a
// time. There is no batching and no rollback: each accepted action
// issues an immediate update, and a failure on one keyword does not
// stop the walk.
type Optimizer struct {
	client BidUpdater
	index  report.BidIndex
	w      *ui.Writer
	in     *bufio.Reader

	// DryRun prints suggestions without prompting or updating.
	DryRun bool
}

// New creates an optimizer reading actions from in.
func New(client BidUpdater, index report.BidIndex, w *ui.Writer, in io.Reader) *Optimizer {
	return &Optimizer{
		client: client,
		index:  index,
		w:      w,
		in:     bufio.NewReader(in),
	}
}

// Summary reports what the walkthrough did.
type Summary struct {
	Updated int
	Skipped int
	Failed  int
}

// Candidates filters records down to those worth walking: a known high
// share strictly below maxShare percent, and a suggestion that actually
// raises the bid. Records are returned sorted lowest share first.
func Candidates(records []*share.Record, maxShare float64) []*share.Record {
	filter := share.Filter{MaxShare: &maxShare}
	out := make([]*share.Record, 0, len(records))
	for _, r := range filter.Apply(records) {
		if r.SuggestedBid().GreaterThan(r.CurrentBid) {
			out = append(out, r)
		}
	}
	share.SortByShare(out)
	return out
}

// Run walks the candidates. Quit ends the walk early; per-keyword
// failures are reported and counted but do not abort.
func (o *Optimizer) Run(ctx context.Context, candidates []*share.Record) Summary {
	var summary Summary

	for i, record := range candidates {
		o.w.Println("")
		o.w.Println(o.w.Color(ui.Bold+ui.Cyan, "Keyword %d/%d"), i+1, len(candidates))
		o.w.Field("Campaign", record.CampaignName, "")
		o.w.Field("Keyword", record.Keyword, ui.White)
		o.w.Field("Country", record.Country, "")
		o.w.Field("Share", record.ShareRange(), ui.Green)
		o.w.Field("Rank", record.RankString(), "")
		o.w.Field("Current", record.BidString(), "")
		o.w.Field("Suggested", record.SuggestedBidString(), ui.Yellow)

		if o.DryRun {
			o.w.Println("  %s", o.w.Color(ui.Dim, "(dry run - no changes made)"))
			continue
		}

		switch o.prompt("  Action [y/n/c/q] (n): ") {
		case "q":
			o.w.Info("Stopping optimization")
			return summary
		case "y":
			if o.apply(ctx, record, record.SuggestedBid()) {
				summary.Updated++
			} else {
				summary.Failed++
			}
		case "c":
			bid, ok := o.promptCustomBid(record.CurrentBid.Currency)
			if !ok {
				summary.Skipped++
				continue
			}
			if o.apply(ctx, record, bid) {
				summary.Updated++
			} else {
				summary.Failed++
			}
		default:
			summary.Skipped++
		}
	}

	return summary
}

// prompt reads one trimmed, lowercased line.
func (o *Optimizer) prompt(label string) string {
	o.w.Print("%s", label)
	line, err := o.in.ReadString('\n')
	if err != nil {
		// EOF on stdin means stop walking.
		return "q"
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// promptCustomBid asks for a decimal bid amount. Parse errors are
// reported and treated as a skip, not a fatal error.
func (o *Optimizer) promptCustomBid(currency types.Currency) (types.Money, bool) {
	raw := o.prompt("  Enter custom bid: ")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		o.w.Error("Invalid bid amount: %s", raw)
		return types.Money{}, false
	}
	return types.Money{Amount: amount, Currency: currency}, true
}

func (o *Optimizer) apply(ctx context.Context, record *share.Record, bid types.Money) bool {
	entry, ok := o.index[record.KeywordID]
	if !ok {
		o.w.Error("No bid path known for keyword %d", record.KeywordID)
		return false
	}

	err := o.client.UpdateKeywordBid(ctx, entry.CampaignID, entry.AdGroupID, record.KeywordID, bid)
	if err != nil {
		o.w.Error("Update failed: %v", err)
		logging.Warn("keyword bid update failed",
			zap.Int64("keyword_id", record.KeywordID), zap.Error(err))
		return false
	}

	o.w.Success("Updated bid to %s", bid.String())
	return true
}
