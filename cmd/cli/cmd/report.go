// Package cmd - report command
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"adshare/core/export"
	"adshare/core/report"
	"adshare/internal/config"
	"adshare/internal/errors"
)

var (
	reportDays    int
	reportCountry string
	reportOutput  string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate impression share report",
	Long: `Generate impression share report.

Creates a detailed report of impression share across all keywords with
optional CSV export.

Examples:
  adshare report --days 14 --output share_report.csv`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportDays, "days", "d", 7, "number of days to analyze (max 30)")
	reportCmd.Flags().StringVarP(&reportCountry, "country", "c", "", "filter by country code")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "save to CSV file")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	w := newWriter()
	client := newClient()

	rep, err := fetchReport(ctx, client, w, reportDays, reportCountry)
	if err != nil {
		w.Error("%v", err)
		return nil
	}

	if len(rep.Rows) == 0 {
		w.Warning("No data available for the selected period")
		return nil
	}
	w.Success("Retrieved %d records", len(rep.Rows))

	// The export works on raw report rows: every row is written, even
	// ones without keyword metadata, and bids are not part of the schema.
	if reportOutput != "" {
		if err := writeCSVFile(reportOutput, rep.Rows); err != nil {
			w.Error("Export failed: %v", err)
			return nil
		}
		w.Success("Report saved to %s", reportOutput)
		return nil
	}

	limit := config.Get().Output.TableLimit
	shown := rep.Rows
	if len(shown) > limit {
		shown = shown[:limit]
	}

	w.Header("Impression Share Summary")
	table := w.NewTable("Campaign", "Keyword", "Country", "Share", "Rank")
	for i := range shown {
		row := &shown[i]
		table.AddRow(
			truncate(row.Metadata.CampaignName, 30),
			row.Metadata.Keyword,
			row.Metadata.CountryOrRegion,
			row.ShareRange(),
			row.RankDisplay(),
		)
	}
	table.Render()

	if len(rep.Rows) > limit {
		w.Println("")
		w.Info("Showing first %d of %d records. Use --output to export all.", limit, len(rep.Rows))
	}
	return nil
}

func writeCSVFile(path string, rows []report.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Export("creating output file", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, rows); err != nil {
		return errors.Export("writing CSV", err)
	}
	return nil
}
