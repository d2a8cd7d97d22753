package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/population-dashboard/internal/config"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatisticsProvider(t *testing.T, serverURL string) StatisticsProvider {
	t.Helper()
	p, err := NewWorldBankStatisticsProvider(config.StatisticsProvider{
		URL:            serverURL,
		Country:        "MW",
		DateRange:      "2018:2023",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestPopulationSeries_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/country/MW/indicator/SP.POP.TOTL", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "2018:2023", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"page":1,"pages":1,"per_page":100,"total":4},
			[
				{"date":"2021","value":19889742},
				{"date":"2023","value":null},
				{"date":"2022","value":20405317},
				{"date":"2020","value":19377061}
			]
		]`))
	}))
	defer srv.Close()

	got, err := newTestStatisticsProvider(t, srv.URL).PopulationSeries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.PopulationPoint{
		{Year: 2020, Value: 19377061},
		{Year: 2021, Value: 19889742},
		{Year: 2022, Value: 20405317},
	}, got)
}

func TestPopulationSeries_ErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`))
	}))
	defer srv.Close()

	_, err := newTestStatisticsProvider(t, srv.URL).PopulationSeries(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPopulationSeries_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestStatisticsProvider(t, srv.URL).PopulationSeries(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPopulationSeries_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestStatisticsProvider(t, srv.URL).PopulationSeries(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestIndicatorSeries_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/country/TZ/indicator/SP.POP.GROW", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		assert.Empty(t, r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"page":1,"pages":1,"per_page":20,"total":3},
			[
				{"date":"2024","value":null},
				{"date":"2022","value":2.9},
				{"date":"2023","value":2.8}
			]
		]`))
	}))
	defer srv.Close()

	got, err := newTestStatisticsProvider(t, srv.URL).IndicatorSeries(context.Background(), models.IndicatorQuery{
		Country:   "TZ",
		Indicator: "SP.POP.GROW",
		Limit:     20,
	})

	require.NoError(t, err)
	assert.Equal(t, []models.IndicatorValue{
		{Year: "2023", Value: 2.8},
		{Year: "2022", Value: 2.9},
	}, got)
}

func TestIndicatorSeries_DefaultsToConfiguredCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/country/MW/indicator/SP.URB.TOTL.IN.ZS", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"page":1},[{"date":"2023","value":null}]]`))
	}))
	defer srv.Close()

	got, err := newTestStatisticsProvider(t, srv.URL).IndicatorSeries(context.Background(), models.IndicatorQuery{
		Indicator: "SP.URB.TOTL.IN.ZS",
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndicatorSeries_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestStatisticsProvider(t, srv.URL).IndicatorSeries(context.Background(), models.IndicatorQuery{Indicator: "SP.POP.GROW", Limit: 30})
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestNewWorldBankStatisticsProvider_InvalidURL(t *testing.T) {
	_, err := NewWorldBankStatisticsProvider(config.StatisticsProvider{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestNewAdapters(t *testing.T) {
	a, err := NewAdapters(config.Adapter{
		Statistics: config.StatisticsProvider{URL: "https://api.worldbank.org", Country: "MW"},
	}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, a.IdentityProvider)
	assert.NotNil(t, a.StatisticsProvider)
}
