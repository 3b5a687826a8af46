// Package types defines the shared ad account entities.
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Money is a bid or budget amount in a specific currency.
// Amounts use exact decimal arithmetic; rounding happens at display time.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a Money value from an amount string as returned by the
// API ("2.50"). Invalid amounts yield a zero amount.
func NewMoney(amount string, currency Currency) Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		d = decimal.Zero
	}
	return Money{Amount: d, Currency: currency}
}

// Mul returns the amount scaled by factor, keeping the currency.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// GreaterThan reports whether m's amount exceeds other's.
func (m Money) GreaterThan(other Money) bool {
	return m.Amount.GreaterThan(other.Amount)
}

// Equal reports whether the amounts are equal.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount)
}

// String renders the amount to two decimal places with the currency code.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// Campaign is an ad campaign
type Campaign struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	CountryCode string     `json:"countryCode,omitempty"`
	DailyBudget *MoneyWire `json:"dailyBudgetAmount,omitempty"`
}

// AdGroup is an ad group within a campaign
type AdGroup struct {
	ID         int64      `json:"id"`
	CampaignID int64      `json:"campaignId"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	DefaultBid *MoneyWire `json:"defaultBidAmount,omitempty"`
}

// Keyword is a targeting keyword within an ad group
type Keyword struct {
	ID        int64      `json:"id"`
	AdGroupID int64      `json:"adGroupId"`
	Text      string     `json:"text"`
	MatchType string     `json:"matchType"`
	Status    string     `json:"status"`
	Bid       *MoneyWire `json:"bidAmount,omitempty"`
}

// MoneyWire is the API wire form of a money amount
type MoneyWire struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Money converts the wire form to a Money value.
func (w *MoneyWire) Money() Money {
	if w == nil {
		return Money{Currency: CurrencyUSD}
	}
	return NewMoney(w.Amount, Currency(w.Currency))
}

// Pagination describes the page window of a list response
type Pagination struct {
	TotalResults int `json:"totalResults"`
	StartIndex   int `json:"startIndex"`
	ItemsPerPage int `json:"itemsPerPage"`
}
