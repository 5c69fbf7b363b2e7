package dashboard

import (
	"context"
	"log/slog"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Service serves dashboard snapshots. The content API's
// /dashboard/stats aggregate is authoritative; this layer only caches
// it, first in Redis across instances, then in the query cache for the
// staleness window.
type Service struct {
	logger *slog.Logger
	client *strapi.Client
	qcache *query.Cache
	snaps  *Cache
}

func NewService(logger *slog.Logger, client *strapi.Client, qcache *query.Cache, snaps *Cache) *Service {
	return &Service{logger: logger, client: client, qcache: qcache, snaps: snaps}
}

// Stats returns the dashboard aggregate.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	key := query.Key(query.KeyDashboard, "stats")
	v, err := s.qcache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}

// Warm pre-populates the Redis snapshot so the first page load after a
// deploy or bump does not pay the upstream round trip.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.fetch(ctx)
	return err
}

// Refresh bumps the snapshot version and fetches a fresh aggregate.
func (s *Service) Refresh(ctx context.Context) (Stats, error) {
	if err := s.snaps.Bump(ctx); err != nil {
		s.logger.Warn("dashboard cache bump failed", slog.Any("error", err))
	}
	s.qcache.Invalidate(query.KeyDashboard)
	return s.Stats(ctx)
}

func (s *Service) fetch(ctx context.Context) (Stats, error) {
	key, err := s.snaps.BuildKey(ctx, "dashboard", "stats")
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	err = s.snaps.FetchJSON(ctx, key, &stats, func(ctx context.Context) (any, error) {
		return strapi.GetRaw[Stats](ctx, s.client, "/dashboard/stats", nil)
	})
	return stats, err
}
