package report

import (
	"adshare/core/share"
	"adshare/core/types"
)

// BuildRecords joins report rows with the bid index into share records.
// Rows without a keyword are dropped. Rows whose keyword is missing from
// the index keep a zero USD bid so they still render in reports.
func BuildRecords(rep *Report, index BidIndex) []*share.Record {
	records := make([]*share.Record, 0, len(rep.Rows))

	for _, row := range rep.Rows {
		meta := row.Metadata
		if meta.KeywordID == 0 || meta.Keyword == "" {
			continue
		}

		bid := types.Money{Currency: types.CurrencyUSD}
		if entry, ok := index[meta.KeywordID]; ok {
			bid = entry.Bid
		}

		records = append(records, &share.Record{
			CampaignID:   meta.CampaignID,
			CampaignName: meta.CampaignName,
			AdGroupID:    meta.AdGroupID,
			AdGroupName:  meta.AdGroupName,
			KeywordID:    meta.KeywordID,
			Keyword:      meta.Keyword,
			Country:      meta.CountryOrRegion,
			CurrentBid:   bid,
			LowShare:     share.ClampShare(row.LowImpressionShare),
			HighShare:    share.ClampShare(row.HighImpressionShare),
			Rank:         row.Rank,
			SearchPop:    row.SearchPopularity,
		})
	}

	return records
}
