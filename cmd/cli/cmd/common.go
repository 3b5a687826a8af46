// Package cmd - shared fetch pipeline for the report-backed commands
package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"adshare/adapters/asa"
	"adshare/core/report"
	"adshare/core/ui"
	"adshare/internal/config"
)

// newWriter builds the terminal writer from config.
func newWriter() *ui.Writer {
	return ui.NewWriter(os.Stdout, config.Get().Output.NoColor)
}

// newClient builds the API client from config.
func newClient() asa.Client {
	cfg := config.Get()
	return asa.NewHTTPClient(&asa.Config{
		BaseURL:      cfg.API.BaseURL,
		OrgID:        cfg.API.OrgID,
		AccessToken:  cfg.API.AccessToken,
		PageLimit:    cfg.API.PageLimit,
		PollInterval: time.Duration(cfg.Report.PollIntervalSeconds * float64(time.Second)),
		Timeout:      time.Duration(cfg.Report.TimeoutSeconds * float64(time.Second)),
	})
}

// fetchReport resolves the date range (warning on clamp) and fetches the
// impression share report behind a spinner.
func fetchReport(ctx context.Context, client asa.Client, w *ui.Writer, days int, country string) (*report.Report, error) {
	start, end, clamped := report.DateRange(days, time.Now())
	if clamped {
		w.Warning("Maximum lookback is %d days, using %d", report.MaxLookbackDays, report.MaxLookbackDays)
	}

	var countries []string
	if country != "" {
		countries = []string{strings.ToUpper(country)}
	}

	spinner := w.NewSpinner("Creating impression share report...")
	spinner.Start()
	rep, err := client.ImpressionShareReport(ctx, report.Request{
		StartDate:    start,
		EndDate:      end,
		Granularity:  report.GranularityDaily,
		CountryCodes: countries,
	})
	spinner.Stop(err == nil)
	return rep, err
}

// fetchBidIndex walks the campaign hierarchy behind a progress bar.
func fetchBidIndex(ctx context.Context, client asa.Client, w *ui.Writer, campaignPattern string) (report.BidIndex, error) {
	var bar *ui.ProgressBar
	index, err := report.BuildBidIndex(ctx, client, campaignPattern, func(done, total int) {
		if bar == nil {
			bar = w.NewProgressBar(total, "Fetching keyword bid data")
		}
		bar.Update(done)
	})
	if bar != nil {
		bar.Done()
	}
	return index, err
}
