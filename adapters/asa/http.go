package asa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adshare/core/report"
	"adshare/core/types"
	"adshare/internal/errors"
	"adshare/internal/logging"
)

// Config holds HTTP client configuration
type Config struct {
	// BaseURL is the API endpoint
	BaseURL string

	// OrgID is sent as the ad account context header
	OrgID string

	// AccessToken is the bearer token
	AccessToken string

	// PageLimit is the page size for list calls
	PageLimit int

	// PollInterval is the wait between report status polls
	PollInterval time.Duration

	// Timeout bounds report generation end to end
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "https://api.searchads.apple.com/api/v5",
		PageLimit:    1000,
		PollInterval: 3 * time.Second,
		Timeout:      120 * time.Second,
	}
}

// HTTPClient is the net/http implementation of Client.
// It is deliberately thin: no retries, no backoff, no rate limiting.
// Failures surface to the caller as typed API errors.
type HTTPClient struct {
	config *Config
	http   *http.Client
}

// NewHTTPClient creates an API client
func NewHTTPClient(config *Config) *HTTPClient {
	if config == nil {
		config = DefaultConfig()
	}
	if config.PageLimit <= 0 {
		config.PageLimit = 1000
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 3 * time.Second
	}
	if config.Timeout <= 0 {
		config.Timeout = 120 * time.Second
	}
	return &HTTPClient{
		config: config,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Client = (*HTTPClient)(nil)

// listResponse is the paginated list envelope
type listResponse struct {
	Data       json.RawMessage  `json:"data"`
	Pagination types.Pagination `json:"pagination"`
}

// ListCampaigns returns all campaigns in the account.
func (c *HTTPClient) ListCampaigns(ctx context.Context) ([]types.Campaign, error) {
	var campaigns []types.Campaign
	err := c.listAll(ctx, "/campaigns", func(data json.RawMessage) (int, error) {
		var page []types.Campaign
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, err
		}
		campaigns = append(campaigns, page...)
		return len(page), nil
	})
	if err != nil {
		return nil, errors.API("listing campaigns", err)
	}
	return campaigns, nil
}

// ListAdGroups returns all ad groups in a campaign.
func (c *HTTPClient) ListAdGroups(ctx context.Context, campaignID int64) ([]types.AdGroup, error) {
	var adGroups []types.AdGroup
	path := fmt.Sprintf("/campaigns/%d/adgroups", campaignID)
	err := c.listAll(ctx, path, func(data json.RawMessage) (int, error) {
		var page []types.AdGroup
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, err
		}
		adGroups = append(adGroups, page...)
		return len(page), nil
	})
	if err != nil {
		return nil, errors.API("listing ad groups", err).WithContext("campaign_id", campaignID)
	}
	return adGroups, nil
}

// ListKeywords returns all targeting keywords in an ad group.
func (c *HTTPClient) ListKeywords(ctx context.Context, campaignID, adGroupID int64) ([]types.Keyword, error) {
	var keywords []types.Keyword
	path := fmt.Sprintf("/campaigns/%d/adgroups/%d/targetingkeywords", campaignID, adGroupID)
	err := c.listAll(ctx, path, func(data json.RawMessage) (int, error) {
		var page []types.Keyword
		if err := json.Unmarshal(data, &page); err != nil {
			return 0, err
		}
		keywords = append(keywords, page...)
		return len(page), nil
	})
	if err != nil {
		return nil, errors.API("listing keywords", err).WithContext("ad_group_id", adGroupID)
	}
	return keywords, nil
}

// listAll pages through a collection endpoint until every item is read.
func (c *HTTPClient) listAll(ctx context.Context, path string, collect func(json.RawMessage) (int, error)) error {
	offset := 0
	for {
		url := fmt.Sprintf("%s%s?limit=%d&offset=%d", c.config.BaseURL, path, c.config.PageLimit, offset)
		var resp listResponse
		if err := c.do(ctx, http.MethodGet, url, nil, &resp); err != nil {
			return err
		}

		n, err := collect(resp.Data)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		offset += n
		if offset >= resp.Pagination.TotalResults {
			return nil
		}
	}
}

// reportStatus is the report generation state envelope
type reportStatus struct {
	ID    string         `json:"id"`
	State string         `json:"state"`
	Rows  *report.Report `json:"report,omitempty"`
}

// ImpressionShareReport creates a custom report and polls it to
// completion with a fixed interval, bounded by the configured timeout.
func (c *HTTPClient) ImpressionShareReport(ctx context.Context, req report.Request) (*report.Report, error) {
	body := map[string]interface{}{
		"startTime":   req.StartDate.Format("2006-01-02"),
		"endTime":     req.EndDate.Format("2006-01-02"),
		"granularity": string(req.Granularity),
		"name":        fmt.Sprintf("impression-share-%s", req.EndDate.Format("20060102")),
	}
	if len(req.CountryCodes) > 0 {
		body["selector"] = map[string]interface{}{
			"conditions": []map[string]interface{}{
				{"field": "countryOrRegion", "operator": "IN", "values": req.CountryCodes},
			},
		}
	}

	var created reportStatus
	url := c.config.BaseURL + "/custom-reports"
	if err := c.do(ctx, http.MethodPost, url, body, &created); err != nil {
		return nil, errors.API("creating impression share report", err)
	}
	logging.Debug("report created", zap.String("report_id", created.ID), zap.String("state", created.State))

	deadline := time.Now().Add(c.config.Timeout)
	for {
		if created.State == "COMPLETED" {
			if created.Rows == nil {
				return &report.Report{}, nil
			}
			return created.Rows, nil
		}
		if created.State == "FAILED" {
			return nil, errors.API("report generation failed", nil).WithContext("report_id", created.ID)
		}
		if time.Now().After(deadline) {
			return nil, errors.Timeout("report generation timed out").WithContext("report_id", created.ID)
		}

		select {
		case <-ctx.Done():
			return nil, errors.API("report polling cancelled", ctx.Err())
		case <-time.After(c.config.PollInterval):
		}

		pollURL := fmt.Sprintf("%s/custom-reports/%s", c.config.BaseURL, created.ID)
		if err := c.do(ctx, http.MethodGet, pollURL, nil, &created); err != nil {
			return nil, errors.API("polling report status", err)
		}
	}
}

// UpdateKeywordBid sets a keyword's bid amount.
func (c *HTTPClient) UpdateKeywordBid(ctx context.Context, campaignID, adGroupID, keywordID int64, bid types.Money) error {
	url := fmt.Sprintf("%s/campaigns/%d/adgroups/%d/targetingkeywords/%d",
		c.config.BaseURL, campaignID, adGroupID, keywordID)
	body := map[string]interface{}{
		"bidAmount": types.MoneyWire{
			Amount:   bid.Amount.StringFixed(2),
			Currency: string(bid.Currency),
		},
	}
	if err := c.do(ctx, http.MethodPut, url, body, nil); err != nil {
		return errors.API("updating keyword bid", err).WithContext("keyword_id", keywordID)
	}
	return nil
}

// do executes one request, decoding a JSON response into out when non-nil.
func (c *HTTPClient) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("X-AP-Context", "orgId="+c.config.OrgID)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return errors.Auth(fmt.Sprintf("request rejected with status %d", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, bytes.TrimSpace(payload))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
