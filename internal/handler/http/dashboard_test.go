package http

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/population-dashboard/internal/service"
	"github.com/MKhiriev/population-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testTrend = models.PopulationTrend{
	Labels: []string{"2021", "2022", "2023"},
	Datasets: []models.Dataset[float64]{
		{Label: "Population (in Millions)", Data: []float64{19.89, 20.41, 20.93}},
	},
}

func TestDashboardStats(t *testing.T) {
	t.Run("stats are served", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.authenticateAs(localIdentity(3, models.RoleUser))
		mocks.statistics.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardStats{
			TotalPopulation: models.StatCard{Label: "Total Population", Value: "20.9M", Change: "2.6%", Year: "2023"},
		}, nil)

		rec := serve(h, http.MethodGet, "/api/dashboard/stats", "", testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var stats models.DashboardStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, "20.9M", stats.TotalPopulation.Value)
	})

	t.Run("upstream is unavailable", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.authenticateAs(localIdentity(3, models.RoleUser))
		mocks.statistics.EXPECT().
			DashboardStats(gomock.Any()).
			Return(models.DashboardStats{}, fmt.Errorf("%w: timeout", service.ErrStatisticsUnavailable))

		rec := serve(h, http.MethodGet, "/api/dashboard/stats", "", testToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch dashboard stats.", messageOf(t, rec))
	})

	t.Run("provisional external caller is accepted", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.authenticateAs(externalCaller())
		mocks.statistics.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardStats{}, nil)

		rec := serve(h, http.MethodGet, "/api/dashboard/stats", "", testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPopulationTrend(t *testing.T) {
	t.Run("protected route", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.authenticateAs(localIdentity(3, models.RoleUser))
		mocks.statistics.EXPECT().PopulationTrend(gomock.Any()).Return(testTrend, nil)

		rec := serve(h, http.MethodGet, "/api/dashboard/population-trend", "", testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var trend models.PopulationTrend
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trend))
		assert.Equal(t, testTrend, trend)
	})

	t.Run("public route needs no token", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.statistics.EXPECT().PopulationTrend(gomock.Any()).Return(testTrend, nil)

		rec := serve(h, http.MethodGet, "/api/dashboard/population-trend-public", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failure", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.statistics.EXPECT().PopulationTrend(gomock.Any()).Return(models.PopulationTrend{}, service.ErrNotEnoughStatistics)

		rec := serve(h, http.MethodGet, "/api/dashboard/population-trend-public", "", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch population trend.", messageOf(t, rec))
	})
}

func TestPopulationTrend_Gzipped(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.statistics.EXPECT().PopulationTrend(gomock.Any()).Return(testTrend, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/population-trend-public", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)

	var trend models.PopulationTrend
	require.NoError(t, json.Unmarshal(body, &trend))
	assert.Equal(t, testTrend.Labels, trend.Labels)
}

func TestRegionalDistribution(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.authenticateAs(localIdentity(3, models.RoleUser))
	mocks.statistics.EXPECT().RegionalDistribution(gomock.Any()).Return(models.RegionalDistribution{
		Labels:   []string{"Northern", "Central", "Southern"},
		Datasets: []models.Dataset[int64]{{Label: "Population (2018 Census)", Data: []int64{2289780, 7523340, 7750629}}},
		Year:     2018,
	})

	rec := serve(h, http.MethodGet, "/api/dashboard/regional-distribution", "", testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"labels":["Northern","Central","Southern"],"datasets":[{"label":"Population (2018 Census)","data":[2289780,7523340,7750629]}],"year":2018}`,
		rec.Body.String())
}

func TestAgeDistribution_FallbackIsServed(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.authenticateAs(localIdentity(3, models.RoleUser))
	fallback := 44.0
	mocks.statistics.EXPECT().AgeDistribution(gomock.Any()).Return(models.AgeDistribution{
		Fallback: models.Chart{Labels: []string{"0-14 years"}, Datasets: []models.ChartDataset{{Data: []*float64{&fallback}}}},
	})

	rec := serve(h, http.MethodGet, "/api/dashboard/age-distribution", "", testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"real":null,"mock":{"labels":["0-14 years"],"datasets":[{"data":[44]}]}}`, rec.Body.String())
}

func TestIndicatorPanels(t *testing.T) {
	urban := 18.0
	chart := models.Chart{
		Labels:   []string{"Urban", "Rural"},
		Datasets: []models.ChartDataset{{Data: []*float64{&urban, nil}}},
		Year:     "2023",
	}
	unavailable := fmt.Errorf("%w: timeout", service.ErrStatisticsUnavailable)

	tests := []struct {
		path        string
		expect      func(m *serviceMocks, err error)
		wantMessage string
	}{
		{
			path:        "/api/dashboard/health-metrics",
			expect:      func(m *serviceMocks, err error) { m.statistics.EXPECT().HealthMetrics(gomock.Any()).Return(chart, err) },
			wantMessage: "Failed to fetch health metrics data.",
		},
		{
			path:        "/api/dashboard/growth-analysis",
			expect:      func(m *serviceMocks, err error) { m.statistics.EXPECT().GrowthAnalysis(gomock.Any()).Return(chart, err) },
			wantMessage: "Failed to fetch growth analysis data.",
		},
		{
			path:        "/api/dashboard/comparative-studies",
			expect:      func(m *serviceMocks, err error) { m.statistics.EXPECT().ComparativeStudies(gomock.Any()).Return(chart, err) },
			wantMessage: "Failed to fetch comparative studies data.",
		},
		{
			path:        "/api/dashboard/urban-rural",
			expect:      func(m *serviceMocks, err error) { m.statistics.EXPECT().UrbanRural(gomock.Any()).Return(chart, err) },
			wantMessage: "Failed to fetch urban vs rural data.",
		},
		{
			path: "/api/dashboard/demographics",
			expect: func(m *serviceMocks, err error) {
				m.statistics.EXPECT().Demographics(gomock.Any()).Return(models.Demographics{Gender: chart, Pyramid: chart}, err)
			},
			wantMessage: "Failed to fetch demographics data.",
		},
		{
			path: "/api/dashboard/analytics",
			expect: func(m *serviceMocks, err error) {
				m.statistics.EXPECT().Analytics(gomock.Any()).Return(models.Analytics{AgeDistribution: chart}, err)
			},
			wantMessage: "Failed to fetch analytics data.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.authenticateAs(localIdentity(3, models.RoleUser))
			tt.expect(mocks, nil)

			rec := serve(h, http.MethodGet, tt.path, "", testToken)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"data":[18,null]`)
		})

		t.Run(tt.path+" upstream failure", func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.authenticateAs(localIdentity(3, models.RoleUser))
			tt.expect(mocks, unavailable)

			rec := serve(h, http.MethodGet, tt.path, "", testToken)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rec))
		})
	}
}
