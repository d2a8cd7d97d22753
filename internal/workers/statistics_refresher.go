// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/service"
)

// StatisticsRefresher keeps the dashboard snapshot warm. It refreshes once
// on start and then on every tick of the interval.
type StatisticsRefresher struct {
	statistics service.StatisticsService
	interval   time.Duration

	logger *logger.Logger
}

func NewStatisticsRefresher(statistics service.StatisticsService, interval time.Duration, logger *logger.Logger) *StatisticsRefresher {
	return &StatisticsRefresher{
		statistics: statistics,
		interval:   interval,
		logger:     logger,
	}
}

func (s *StatisticsRefresher) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn().Str("func", "*StatisticsRefresher.Run").Msg("refresh interval is not positive, worker is disabled")
		return
	}

	go s.loop(ctx)
}

func (s *StatisticsRefresher) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Str("func", "*StatisticsRefresher.loop").Msg("statistics refresher stopped")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *StatisticsRefresher) refresh(ctx context.Context) {
	if err := s.statistics.Refresh(ctx); err != nil {
		s.logger.Err(err).Str("func", "*StatisticsRefresher.refresh").Msg("error refreshing population statistics")
		return
	}
	s.logger.Debug().Str("func", "*StatisticsRefresher.refresh").Msg("population statistics refreshed")
}
