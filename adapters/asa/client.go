// Package asa provides the Search Ads API client used by the CLI.
// The interface is the seam the commands program against; the HTTP
// implementation lives in this package, mocks live with the tests.
package asa

import (
	"context"

	"adshare/core/report"
	"adshare/core/types"
)

// Client is the Search Ads API surface the CLI depends on. List calls
// page through the full collection before returning.
type Client interface {
	// ListCampaigns returns all campaigns in the account.
	ListCampaigns(ctx context.Context) ([]types.Campaign, error)

	// ListAdGroups returns all ad groups in a campaign.
	ListAdGroups(ctx context.Context, campaignID int64) ([]types.AdGroup, error)

	// ListKeywords returns all targeting keywords in an ad group.
	ListKeywords(ctx context.Context, campaignID, adGroupID int64) ([]types.Keyword, error)

	// ImpressionShareReport creates a report and polls until it
	// completes or the client's timeout elapses.
	ImpressionShareReport(ctx context.Context, req report.Request) (*report.Report, error)

	// UpdateKeywordBid sets a keyword's bid amount.
	UpdateKeywordBid(ctx context.Context, campaignID, adGroupID, keywordID int64, bid types.Money) error
}
