package domain

// TargetPriceQuery asks which sell price yields a desired net profit.
type TargetPriceQuery struct {
	BuyPrice                float64 `yaml:"buy_price" json:"buy_price"`
	Shares                  float64 `yaml:"shares" json:"shares"`
	DesiredNetProfit        float64 `yaml:"desired_net_profit" json:"desired_net_profit"`
	BrokerageFeeRatePercent float64 `yaml:"brokerage_fee_rate_percent" json:"brokerage_fee_rate_percent"`
	TaxRatePercent          float64 `yaml:"tax_rate_percent" json:"tax_rate_percent"`
}

// TargetPriceResult is the solver outcome. SellPrice is always the best
// estimate found; Converged reports whether it meets the profit tolerance.
type TargetPriceResult struct {
	SellPrice  float64 `json:"sell_price"`
	NetProfit  float64 `json:"net_profit"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// TradeInput describes a completed (or hypothetical) round-trip trade.
type TradeInput struct {
	BuyPrice                float64 `yaml:"buy_price" json:"buy_price"`
	SellPrice               float64 `yaml:"sell_price" json:"sell_price"`
	Shares                  float64 `yaml:"shares" json:"shares"`
	BrokerageFeeRatePercent float64 `yaml:"brokerage_fee_rate_percent" json:"brokerage_fee_rate_percent"`
	TaxRatePercent          float64 `yaml:"tax_rate_percent" json:"tax_rate_percent"`
	HoldingDays             int     `yaml:"holding_days,omitempty" json:"holding_days,omitempty"`
	Dividends               float64 `yaml:"dividends,omitempty" json:"dividends,omitempty"`
	Country                 string  `yaml:"country,omitempty" json:"country,omitempty"` // Overrides TaxRatePercent when set
}

// TradeResult is the profit/loss breakdown of a trade.
type TradeResult struct {
	TotalCost               float64 `json:"total_cost"`
	TotalRevenue            float64 `json:"total_revenue"`
	GrossProfit             float64 `json:"gross_profit"`
	BrokerageFees           float64 `json:"brokerage_fees"`
	Taxes                   float64 `json:"taxes"`
	Dividends               float64 `json:"dividends"`
	NetProfit               float64 `json:"net_profit"`
	ProfitPercentage        float64 `json:"profit_percentage"`
	AnnualizedReturnPercent float64 `json:"annualized_return_percent"`
	BreakEvenPrice          float64 `json:"break_even_price"`
	TaxRatePercent          float64 `json:"tax_rate_percent"`
}

// CountryTax is a flat capital-gains rate used as a default for a country.
type CountryTax struct {
	Code                    string  `json:"code"`
	Name                    string  `json:"name"`
	CapitalGainsRatePercent float64 `json:"capital_gains_rate_percent"`
	CurrencyCode            string  `json:"currency_code"`
}
