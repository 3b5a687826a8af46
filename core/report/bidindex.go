package report

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"adshare/core/types"
	"adshare/internal/logging"
)

// HierarchyLister is the slice of the API client the bid index needs.
type HierarchyLister interface {
	ListCampaigns(ctx context.Context) ([]types.Campaign, error)
	ListAdGroups(ctx context.Context, campaignID int64) ([]types.AdGroup, error)
	ListKeywords(ctx context.Context, campaignID, adGroupID int64) ([]types.Keyword, error)
}

// BidEntry is a keyword's current bid plus its position in the hierarchy,
// needed later to address the bid update call.
type BidEntry struct {
	Bid        types.Money
	CampaignID int64
	AdGroupID  int64
}

// BidIndex maps keyword ID to its current bid and hierarchy path.
type BidIndex map[int64]BidEntry

// BuildBidIndex walks every campaign, then every ad group, then every
// keyword, collecting keywords that have a bid set. One list call per
// node; the account hierarchy is re-fetched on every invocation.
//
// campaignPattern, when non-empty, skips campaigns whose name does not
// contain the pattern (case-insensitive, "*" stripped). progress, when
// non-nil, is called after each campaign is walked.
func BuildBidIndex(ctx context.Context, client HierarchyLister, campaignPattern string, progress func(done, total int)) (BidIndex, error) {
	index := make(BidIndex)

	campaigns, err := client.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	pattern := strings.ToLower(strings.ReplaceAll(campaignPattern, "*", ""))

	for i, campaign := range campaigns {
		if pattern != "" && !strings.Contains(strings.ToLower(campaign.Name), pattern) {
			if progress != nil {
				progress(i+1, len(campaigns))
			}
			continue
		}

		adGroups, err := client.ListAdGroups(ctx, campaign.ID)
		if err != nil {
			return nil, err
		}

		for _, adGroup := range adGroups {
			keywords, err := client.ListKeywords(ctx, campaign.ID, adGroup.ID)
			if err != nil {
				return nil, err
			}

			for _, keyword := range keywords {
				if keyword.Bid == nil {
					continue
				}
				index[keyword.ID] = BidEntry{
					Bid:        keyword.Bid.Money(),
					CampaignID: campaign.ID,
					AdGroupID:  adGroup.ID,
				}
			}
		}

		if progress != nil {
			progress(i+1, len(campaigns))
		}
	}

	logging.Debug("bid index built", zap.Int("keywords", len(index)))
	return index, nil
}
