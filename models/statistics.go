package models

import "time"

// PopulationPoint is a single yearly value of the total population
// indicator.
type PopulationPoint struct {
	Year  int   `json:"year"`
	Value int64 `json:"value"`
}

// StatCard is one headline figure of the dashboard.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Year   string `json:"year"`
}

// DashboardStats is the body of GET /api/dashboard/stats.
type DashboardStats struct {
	TotalPopulation    StatCard `json:"totalPopulation"`
	GrowthRate         StatCard `json:"growthRate"`
	NextYearProjection StatCard `json:"nextYearProjection"`
}

// Dataset is a labelled series of chart values.
type Dataset[T int64 | float64] struct {
	Label string `json:"label"`
	Data  []T    `json:"data"`
}

// PopulationTrend is the chart series of the population in millions.
type PopulationTrend struct {
	Labels   []string           `json:"labels"`
	Datasets []Dataset[float64] `json:"datasets"`
}

// RegionalDistribution is the census population per region.
type RegionalDistribution struct {
	Labels   []string         `json:"labels"`
	Datasets []Dataset[int64] `json:"datasets"`
	Year     int              `json:"year"`
}

// StatisticsSnapshot is the last successfully computed set of dashboard
// figures.
type StatisticsSnapshot struct {
	Stats     DashboardStats
	Trend     PopulationTrend
	FetchedAt time.Time
}

// IndicatorQuery selects a World Bank indicator series.
type IndicatorQuery struct {
	// Country is an ISO code. Empty selects the configured country.
	Country   string
	Indicator string
	// Limit is the number of most recent years requested, empty years
	// included.
	Limit int
}

// IndicatorValue is a non-empty yearly value of an indicator.
type IndicatorValue struct {
	Year  string
	Value float64
}

// ChartDataset is one series of a Chart. A nil value is a year the upstream
// has no figure for.
type ChartDataset struct {
	Label string     `json:"label,omitempty"`
	Data  []*float64 `json:"data"`
}

// Chart is the body of the indicator based dashboard panels.
type Chart struct {
	Labels    []string       `json:"labels"`
	Datasets  []ChartDataset `json:"datasets"`
	Year      string         `json:"year,omitempty"`
	YearRange string         `json:"yearRange,omitempty"`
}

// AgeDistribution is the body of GET /api/dashboard/age-distribution. Real
// is nil when the upstream failed and the client shows Fallback instead.
type AgeDistribution struct {
	Real     *Chart `json:"real"`
	Fallback Chart  `json:"mock"`
}

// Demographics is the gender split and the census population pyramid.
type Demographics struct {
	Gender  Chart `json:"gender"`
	Pyramid Chart `json:"pyramid"`
}

// Analytics bundles the panels of the analytics page.
type Analytics struct {
	PopulationTrend    PopulationTrend      `json:"populationTrend"`
	AgeDistribution    Chart                `json:"ageDistribution"`
	RegionalComparison RegionalDistribution `json:"regionalComparison"`
}
