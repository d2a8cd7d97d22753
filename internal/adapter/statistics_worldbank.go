package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

const (
	populationIndicator = "SP.POP.TOTL"
	worldBankSeriesPath = "/v2/country/{country}/indicator/{indicator}"
	worldBankPerPage    = "100"
)

type worldBankStatisticsProvider struct {
	client    *utils.HTTPClient
	country   string
	dateRange string

	logger *logger.Logger
}

// worldBankEntry is one element of the data page of the indicator API.
type worldBankEntry struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// NewWorldBankStatisticsProvider constructs a [StatisticsProvider] backed by
// the World Bank indicators API.
func NewWorldBankStatisticsProvider(cfg config.StatisticsProvider, logger *logger.Logger) (StatisticsProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	return &worldBankStatisticsProvider{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		country:   cfg.Country,
		dateRange: cfg.DateRange,
		logger:    logger,
	}, nil
}

// PopulationSeries implements [StatisticsProvider].
func (w *worldBankStatisticsProvider) PopulationSeries(ctx context.Context) ([]models.PopulationPoint, error) {
	params := map[string]string{"per_page": worldBankPerPage}
	if w.dateRange != "" {
		params["date"] = w.dateRange
	}

	entries, err := w.fetch(ctx, w.country, populationIndicator, params)
	if err != nil {
		return nil, fmt.Errorf("population series request: %w", err)
	}

	points := make([]models.PopulationPoint, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		year, err := strconv.Atoi(e.Date)
		if err != nil {
			w.logger.Warn().Str("func", "*worldBankStatisticsProvider.PopulationSeries").
				Str("date", e.Date).Msg("skipping entry with non-numeric year")
			continue
		}
		points = append(points, models.PopulationPoint{Year: year, Value: int64(math.Round(*e.Value))})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })

	return points, nil
}

// IndicatorSeries implements [StatisticsProvider].
func (w *worldBankStatisticsProvider) IndicatorSeries(ctx context.Context, query models.IndicatorQuery) ([]models.IndicatorValue, error) {
	country := query.Country
	if country == "" {
		country = w.country
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 1
	}

	entries, err := w.fetch(ctx, country, query.Indicator, map[string]string{"per_page": strconv.Itoa(limit)})
	if err != nil {
		return nil, fmt.Errorf("%s series request for %s: %w", query.Indicator, country, err)
	}

	values := make([]models.IndicatorValue, 0, len(entries))
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		values = append(values, models.IndicatorValue{Year: e.Date, Value: *e.Value})
	}

	// the API pages newest first
	sort.SliceStable(values, func(i, j int) bool { return values[i].Year > values[j].Year })

	return values, nil
}

// fetch returns the data page of one indicator request.
//
// The API answers with a two element array: paging metadata followed by the
// data page. An error payload has only the first element.
func (w *worldBankStatisticsProvider) fetch(ctx context.Context, country, indicator string, params map[string]string) ([]worldBankEntry, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"country":   country,
			"indicator": indicator,
		}).
		SetQueryParam("format", "json").
		SetQueryParams(params).
		Get(worldBankSeriesPath)
	if err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("%w: indicator data page is missing", ErrMalformedResponse)
	}

	var entries []worldBankEntry
	if err = json.Unmarshal(envelope[1], &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return entries, nil
}
