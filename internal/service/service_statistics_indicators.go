package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/models"
	"golang.org/x/sync/errgroup"
)

// World Bank indicator codes.
const (
	indicatorAge0014      = "SP.POP.0014.TO.ZS"
	indicatorAge1564      = "SP.POP.1564.TO.ZS"
	indicatorAge65Up      = "SP.POP.65UP.TO.ZS"
	indicatorFemaleShare  = "SP.POP.TOTL.FE.ZS"
	indicatorMaleShare    = "SP.POP.TOTL.MA.ZS"
	indicatorLifeExpect   = "SP.DYN.LE00.IN"
	indicatorInfantMort   = "SP.DYN.IMRT.IN"
	indicatorSanitation   = "SH.STA.BASS.ZS"
	indicatorGrowthRate   = "SP.POP.GROW"
	indicatorUrbanShare   = "SP.URB.TOTL.IN.ZS"
	pyramidCensusYear     = "2018"
	latestOnlyLimit       = 1
	latestNonEmptyLimit   = 20
	growthAnalysisLimit   = 30
	growthAnalysisYears   = 20
	comparativeStudyLimit = 20
	comparativeStudyYears = 10
)

type indicator struct {
	code  string
	label string
}

var (
	ageIndicators = []indicator{
		{code: indicatorAge0014, label: "0-14 years"},
		{code: indicatorAge1564, label: "15-64 years"},
		{code: indicatorAge65Up, label: "65+ years"},
	}
	genderIndicators = []indicator{
		{code: indicatorFemaleShare, label: "Female"},
		{code: indicatorMaleShare, label: "Male"},
	}
	healthIndicators = []indicator{
		{code: indicatorLifeExpect, label: "Life Expectancy"},
		{code: indicatorInfantMort, label: "Infant Mortality"},
		{code: indicatorSanitation, label: "Access to Basic Sanitation (%)"},
	}

	// comparisonCountries are the neighbours the growth rate is compared
	// with. The first entry provides the year labels.
	comparisonCountries = []indicator{
		{code: "MW", label: "Malawi"},
		{code: "TZ", label: "Tanzania"},
		{code: "MZ", label: "Mozambique"},
	}
)

// fallbackAgeShares is shown while the age indicators cannot be fetched.
var fallbackAgeShares = []float64{44, 53, 3}

// population pyramid of the 2018 census, percent of the total population
var (
	pyramidLabels = []string{"0-4", "5-9", "10-14", "15-19", "20-24", "25-29", "30-34",
		"35-39", "40-44", "45-49", "50-54", "55-59", "60-64", "65+"}
	pyramidMale   = []float64{10.2, 9.8, 9.3, 8.7, 7.8, 6.9, 6.0, 5.1, 4.2, 3.3, 2.4, 1.5, 1.0}
	pyramidFemale = []float64{10.0, 9.6, 9.1, 8.6, 7.7, 6.8, 5.9, 5.0, 4.1, 3.2, 2.3, 1.4, 1.0}
)

// AgeDistribution never fails: when the upstream is down Real is nil and
// the client shows the fallback shares.
func (s *statisticsService) AgeDistribution(ctx context.Context) models.AgeDistribution {
	resp := models.AgeDistribution{Fallback: fallbackAgeChart()}

	chart, err := s.ageChart(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*statisticsService.AgeDistribution").
			Msg("serving fallback age distribution")
		return resp
	}

	resp.Real = &chart
	return resp
}

func (s *statisticsService) Demographics(ctx context.Context) (models.Demographics, error) {
	values, err := s.latestValues(ctx, genderIndicators, latestOnlyLimit)
	if err != nil {
		return models.Demographics{}, err
	}

	gender := latestChart(genderIndicators, values, "Population (%)")
	return models.Demographics{Gender: gender, Pyramid: pyramidChart()}, nil
}

// HealthMetrics reports the most recent non-empty value of each health
// indicator. Year is the newest of those years.
func (s *statisticsService) HealthMetrics(ctx context.Context) (models.Chart, error) {
	values, err := s.latestValues(ctx, healthIndicators, latestNonEmptyLimit)
	if err != nil {
		return models.Chart{}, err
	}

	return latestChart(healthIndicators, values, "Value"), nil
}

// GrowthAnalysis returns up to twenty years of the annual growth rate,
// oldest first.
func (s *statisticsService) GrowthAnalysis(ctx context.Context) (models.Chart, error) {
	series, err := s.provider.IndicatorSeries(ctx, models.IndicatorQuery{
		Indicator: indicatorGrowthRate,
		Limit:     growthAnalysisLimit,
	})
	if err != nil {
		return models.Chart{}, fmt.Errorf("%w: %w", ErrStatisticsUnavailable, err)
	}

	series = oldestFirst(series, growthAnalysisYears)
	labels, data := splitSeries(series)

	chart := models.Chart{
		Labels:   labels,
		Datasets: []models.ChartDataset{{Label: "Population Growth Rate (%)", Data: data}},
	}
	if len(series) > 0 {
		chart.YearRange = series[0].Year + "-" + series[len(series)-1].Year
	}
	return chart, nil
}

// ComparativeStudies compares the last ten years of the growth rate of the
// neighbouring countries.
func (s *statisticsService) ComparativeStudies(ctx context.Context) (models.Chart, error) {
	results := make([][]models.IndicatorValue, len(comparisonCountries))

	g, gctx := errgroup.WithContext(ctx)
	for i, country := range comparisonCountries {
		g.Go(func() error {
			series, err := s.provider.IndicatorSeries(gctx, models.IndicatorQuery{
				Country:   country.code,
				Indicator: indicatorGrowthRate,
				Limit:     comparativeStudyLimit,
			})
			if err != nil {
				return err
			}
			results[i] = oldestFirst(series, comparativeStudyYears)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Chart{}, fmt.Errorf("%w: %w", ErrStatisticsUnavailable, err)
	}

	chart := models.Chart{Datasets: make([]models.ChartDataset, 0, len(results))}
	for i, series := range results {
		labels, data := splitSeries(series)
		if i == 0 {
			chart.Labels = labels
		}
		chart.Datasets = append(chart.Datasets, models.ChartDataset{Label: comparisonCountries[i].label, Data: data})
	}
	return chart, nil
}

// Analytics bundles the trend, the age distribution and the census
// figures. Unlike AgeDistribution it fails when the age indicators cannot
// be fetched.
func (s *statisticsService) Analytics(ctx context.Context) (models.Analytics, error) {
	trend, err := s.PopulationTrend(ctx)
	if err != nil {
		return models.Analytics{}, err
	}

	age, err := s.ageChart(ctx)
	if err != nil {
		return models.Analytics{}, err
	}

	return models.Analytics{
		PopulationTrend:    trend,
		AgeDistribution:    age,
		RegionalComparison: s.RegionalDistribution(ctx),
	}, nil
}

// UrbanRural splits the population by the latest urban share. Both values
// are nil when the upstream has no recent figure.
func (s *statisticsService) UrbanRural(ctx context.Context) (models.Chart, error) {
	series, err := s.provider.IndicatorSeries(ctx, models.IndicatorQuery{
		Indicator: indicatorUrbanShare,
		Limit:     latestNonEmptyLimit,
	})
	if err != nil {
		return models.Chart{}, fmt.Errorf("%w: %w", ErrStatisticsUnavailable, err)
	}

	chart := models.Chart{
		Labels:   []string{"Urban", "Rural"},
		Datasets: []models.ChartDataset{{Data: []*float64{nil, nil}}},
	}
	if len(series) > 0 {
		urban := series[0].Value
		rural := 100 - urban
		chart.Datasets[0].Data = []*float64{&urban, &rural}
		chart.Year = series[0].Year
	}
	return chart, nil
}

func (s *statisticsService) ageChart(ctx context.Context) (models.Chart, error) {
	values, err := s.latestValues(ctx, ageIndicators, latestOnlyLimit)
	if err != nil {
		return models.Chart{}, err
	}
	return latestChart(ageIndicators, values, ""), nil
}

// latestValues fetches the newest value of every indicator in parallel. An
// indicator without a value in the last limit years yields nil.
func (s *statisticsService) latestValues(ctx context.Context, indicators []indicator, limit int) ([]*models.IndicatorValue, error) {
	values := make([]*models.IndicatorValue, len(indicators))

	g, gctx := errgroup.WithContext(ctx)
	for i, ind := range indicators {
		g.Go(func() error {
			series, err := s.provider.IndicatorSeries(gctx, models.IndicatorQuery{Indicator: ind.code, Limit: limit})
			if err != nil {
				return err
			}
			if len(series) > 0 {
				latest := series[0]
				values[i] = &latest
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatisticsUnavailable, err)
	}

	return values, nil
}

func latestChart(indicators []indicator, values []*models.IndicatorValue, label string) models.Chart {
	chart := models.Chart{
		Labels:   make([]string, len(indicators)),
		Datasets: []models.ChartDataset{{Label: label, Data: make([]*float64, len(indicators))}},
	}

	for i, ind := range indicators {
		chart.Labels[i] = ind.label
		if values[i] == nil {
			continue
		}
		value := values[i].Value
		chart.Datasets[0].Data[i] = &value
		if values[i].Year > chart.Year {
			chart.Year = values[i].Year
		}
	}

	return chart
}

// oldestFirst keeps the newest n values of a newest first series and
// reverses them.
func oldestFirst(series []models.IndicatorValue, n int) []models.IndicatorValue {
	if len(series) > n {
		series = series[:n]
	}
	series = slices.Clone(series)
	slices.Reverse(series)
	return series
}

func splitSeries(series []models.IndicatorValue) ([]string, []*float64) {
	labels := make([]string, len(series))
	data := make([]*float64, len(series))
	for i := range series {
		labels[i] = series[i].Year
		data[i] = &series[i].Value
	}
	return labels, data
}

func fallbackAgeChart() models.Chart {
	chart := models.Chart{
		Labels:   make([]string, 0, len(ageIndicators)),
		Datasets: []models.ChartDataset{{Data: pointers(fallbackAgeShares, len(ageIndicators))}},
	}
	for _, ind := range ageIndicators {
		chart.Labels = append(chart.Labels, ind.label)
	}
	return chart
}

// pyramidChart has no figure for the 65+ group.
func pyramidChart() models.Chart {
	return models.Chart{
		Labels: slices.Clone(pyramidLabels),
		Datasets: []models.ChartDataset{
			{Label: "Male", Data: pointers(pyramidMale, len(pyramidLabels))},
			{Label: "Female", Data: pointers(pyramidFemale, len(pyramidLabels))},
		},
		Year: pyramidCensusYear,
	}
}

// pointers copies values into a slice of length n padded with nil.
func pointers(values []float64, n int) []*float64 {
	out := make([]*float64, n)
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}
