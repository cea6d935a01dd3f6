package domain

// RateEntry is a mortgage-rate reading. All values are fixed to 3 places.
type RateEntry struct {
	Latest      *string `json:"latest"`
	Yesterday   *string `json:"yesterday"`
	LastMonth   *string `json:"last_month"`
	YearAgo     *string `json:"year_ago"`
	DailyChange *string `json:"daily_change"`
}

type RateSheet struct {
	Rates       map[string]RateEntry `json:"rates"`
	LastUpdated *string              `json:"last_updated"`
}

var RateProducts = []string{"FIXED30Y", "FIXED15Y", "FHA30Y", "VA30Y", "JUMBO30Y"}
