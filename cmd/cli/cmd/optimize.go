// Package cmd - optimize command
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"adshare/core/optimizer"
	"adshare/core/report"
	"adshare/core/share"
)

var (
	optimizeDays     int
	optimizeCountry  string
	optimizeMaxShare float64
	optimizeDryRun   bool
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Interactive bid optimizer based on impression share",
	Long: `Interactive bid optimizer based on impression share.

Walks through keywords with low impression share and offers to increase
bids to improve exposure. Well suited to SKAG campaigns where each
keyword-campaign pair is optimized individually.

The optimizer suggests bid increases based on current share:
  0-10% share:  50% bid increase
  10-30% share: 25% bid increase
  30-50% share: 10% bid increase

Examples:
  adshare optimize --country US
  adshare optimize --max-share 30 --dry-run`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().IntVarP(&optimizeDays, "days", "d", 7, "number of days to analyze (max 30)")
	optimizeCmd.Flags().StringVarP(&optimizeCountry, "country", "c", "", "filter by country code")
	optimizeCmd.Flags().Float64Var(&optimizeMaxShare, "max-share", 50.0, "only optimize keywords below this share %")
	optimizeCmd.Flags().BoolVar(&optimizeDryRun, "dry-run", false, "show changes without applying them")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	w := newWriter()
	client := newClient()

	rep, err := fetchReport(ctx, client, w, optimizeDays, optimizeCountry)
	if err != nil {
		w.Error("%v", err)
		return nil
	}

	if len(rep.Rows) == 0 {
		w.Warning("No impression share data available")
		return nil
	}

	index, err := fetchBidIndex(ctx, client, w, "")
	if err != nil {
		w.Error("%v", err)
		return nil
	}

	records := report.BuildRecords(rep, index)
	if optimizeCountry != "" {
		records = share.Filter{Country: optimizeCountry}.Apply(records)
	}
	candidates := optimizer.Candidates(records, optimizeMaxShare)

	if len(candidates) == 0 {
		w.Success("All keywords have good impression share - no optimization needed!")
		return nil
	}

	w.Println("")
	w.Info("Found %d keywords that could benefit from bid increases", len(candidates))

	opt := optimizer.New(client, index, w, os.Stdin)
	opt.DryRun = optimizeDryRun
	summary := opt.Run(ctx, candidates)

	w.Println("")
	w.Info("Summary: %d bids updated, %d skipped", summary.Updated, summary.Skipped)
	if summary.Failed > 0 {
		w.Warning("%d updates failed", summary.Failed)
	}
	return nil
}
