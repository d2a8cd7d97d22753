package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/population-dashboard/internal/adapter"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/models"
)

const (
	trendDatasetLabel    = "Population (in Millions)"
	regionalDatasetLabel = "Population (2018 Census)"
	regionalCensusYear   = 2018
)

// regional figures of the 2018 Population and Housing Census
var (
	regionalLabels     = []string{"Northern", "Central", "Southern"}
	regionalPopulation = []int64{2289780, 7523340, 7750629}
)

// statisticsService derives the dashboard figures from the population
// series and keeps the last good snapshot, which is served while the
// upstream is failing.
type statisticsService struct {
	provider adapter.StatisticsProvider
	now      func() time.Time

	mu       sync.RWMutex
	snapshot *models.StatisticsSnapshot

	logger *logger.Logger
}

func NewStatisticsService(provider adapter.StatisticsProvider, logger *logger.Logger) StatisticsService {
	return &statisticsService{
		provider: provider,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *statisticsService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	snapshot, err := s.current(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return snapshot.Stats, nil
}

func (s *statisticsService) PopulationTrend(ctx context.Context) (models.PopulationTrend, error) {
	snapshot, err := s.current(ctx)
	if err != nil {
		return models.PopulationTrend{}, err
	}
	return snapshot.Trend, nil
}

// RegionalDistribution returns the static census figures.
func (s *statisticsService) RegionalDistribution(ctx context.Context) models.RegionalDistribution {
	return models.RegionalDistribution{
		Labels: append([]string(nil), regionalLabels...),
		Datasets: []models.Dataset[int64]{{
			Label: regionalDatasetLabel,
			Data:  append([]int64(nil), regionalPopulation...),
		}},
		Year: regionalCensusYear,
	}
}

// Refresh replaces the cached snapshot. On failure the previous snapshot is
// kept.
func (s *statisticsService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	series, err := s.provider.PopulationSeries(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "*statisticsService.Refresh").Msg("failed to fetch population series")
		return fmt.Errorf("%w: %w", ErrStatisticsUnavailable, err)
	}

	snapshot, err := buildSnapshot(series, s.now())
	if err != nil {
		log.Warn().Err(err).Str("func", "*statisticsService.Refresh").Int("points", len(series)).Msg("population series rejected")
		return err
	}

	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()

	log.Debug().Str("func", "*statisticsService.Refresh").Int("points", len(series)).Msg("population statistics refreshed")
	return nil
}

// current returns the cached snapshot, fetching it on first use.
func (s *statisticsService) current(ctx context.Context) (models.StatisticsSnapshot, error) {
	if snapshot, ok := s.cached(); ok {
		return snapshot, nil
	}

	refreshErr := s.Refresh(ctx)
	if snapshot, ok := s.cached(); ok {
		return snapshot, nil
	}
	if refreshErr == nil {
		refreshErr = ErrStatisticsUnavailable
	}
	return models.StatisticsSnapshot{}, refreshErr
}

func (s *statisticsService) cached() (models.StatisticsSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return models.StatisticsSnapshot{}, false
	}
	return *s.snapshot, true
}

// buildSnapshot computes the cards and the trend of a series sorted by year
// ascending.
func buildSnapshot(series []models.PopulationPoint, fetchedAt time.Time) (models.StatisticsSnapshot, error) {
	if len(series) < 2 {
		return models.StatisticsSnapshot{}, ErrNotEnoughStatistics
	}

	latest := series[len(series)-1]
	previous := series[len(series)-2]
	if previous.Value == 0 {
		return models.StatisticsSnapshot{}, fmt.Errorf("%w: zero population in %d", ErrNotEnoughStatistics, previous.Year)
	}

	growth := growthRate(previous.Value, latest.Value)
	growthChange := 0.0
	if len(series) >= 3 && series[len(series)-3].Value != 0 {
		growthChange = growth - growthRate(series[len(series)-3].Value, previous.Value)
	}
	projection := float64(latest.Value) * (1 + growth/100)

	latestYear := strconv.Itoa(latest.Year)
	stats := models.DashboardStats{
		TotalPopulation: models.StatCard{
			Label:  "Total Population",
			Value:  fmt.Sprintf("%.1fM", millions(float64(latest.Value))),
			Change: fmt.Sprintf("%.1f%%", growth),
			Year:   latestYear,
		},
		GrowthRate: models.StatCard{
			Label:  "Growth Rate",
			Value:  fmt.Sprintf("%.1f%%", growth),
			Change: fmt.Sprintf("%.1f%%", growthChange),
			Year:   latestYear,
		},
		NextYearProjection: models.StatCard{
			Label:  "Next Year Projection",
			Value:  fmt.Sprintf("%.1fM", millions(projection)),
			Change: fmt.Sprintf("+%.1fM", millions(projection-float64(latest.Value))),
			Year:   strconv.Itoa(latest.Year + 1),
		},
	}

	trend := models.PopulationTrend{
		Labels:   make([]string, 0, len(series)),
		Datasets: []models.Dataset[float64]{{Label: trendDatasetLabel, Data: make([]float64, 0, len(series))}},
	}
	for _, point := range series {
		trend.Labels = append(trend.Labels, strconv.Itoa(point.Year))
		trend.Datasets[0].Data = append(trend.Datasets[0].Data, math.Round(millions(float64(point.Value))*100)/100)
	}

	return models.StatisticsSnapshot{Stats: stats, Trend: trend, FetchedAt: fetchedAt}, nil
}

func growthRate(from, to int64) float64 {
	return float64(to-from) / float64(from) * 100
}

func millions(v float64) float64 {
	return v / 1_000_000
}
