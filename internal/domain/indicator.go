package domain

type IndicatorEntry struct {
	Latest        *string `json:"latest"`
	LatestDate    *string `json:"latest_date"`
	LastMonth     *string `json:"last_month"`
	LastMonthDate *string `json:"last_month_date"`
	YearAgo       *string `json:"year_ago"`
	YearAgoDate   *string `json:"year_ago_date"`
	MonthlyChange *string `json:"monthly_change"`
}

type IndicatorSheet struct {
	Indicators  map[string]IndicatorEntry `json:"indicators"`
	LastUpdated *string                   `json:"last_updated"`
}

var IndicatorIDs = []string{"CPI", "CORE_CPI", "UNEMPLOYMENT", "NONFARM_PAYROLLS", "HOUSING_STARTS", "RETAIL_SALES"}
