// Package export writes impression share reports to CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"adshare/core/report"
)

// Header is the fixed CSV column order.
var Header = []string{
	"campaign_id",
	"campaign_name",
	"ad_group_id",
	"ad_group_name",
	"keyword_id",
	"keyword",
	"country",
	"low_impression_share",
	"high_impression_share",
	"rank",
	"search_popularity",
}

// WriteCSV writes one header row plus one row per report row. Every row
// is exported, including ones without keyword metadata; absent optional
// values become empty cells.
func WriteCSV(w io.Writer, rows []report.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range rows {
		meta := r.Metadata
		record := []string{
			strconv.FormatInt(meta.CampaignID, 10),
			meta.CampaignName,
			strconv.FormatInt(meta.AdGroupID, 10),
			meta.AdGroupName,
			strconv.FormatInt(meta.KeywordID, 10),
			meta.Keyword,
			meta.CountryOrRegion,
			formatShare(r.LowImpressionShare),
			formatShare(r.HighImpressionShare),
			formatInt(r.Rank),
			formatInt(r.SearchPopularity),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatShare(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
