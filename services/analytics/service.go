package analytics

import (
	"context"
	"errors"
	"time"

	"earnhub/pkg/cache"
	"earnhub/pkg/provider"
	"earnhub/services/earning"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const view = "analytics"

type rangeFilter struct {
	Range string `json:"range"`
}

type result struct {
	summary *Summary
	source  provider.Source
}

type Service struct {
	earnings *earning.Service
	cache    *cache.Cache
	now      func() time.Time
}

type ServiceParams struct {
	fx.In
	Earnings *earning.Service
	Cache    *cache.Cache
}

func NewService(p ServiceParams) *Service {
	return &Service{
		earnings: p.Earnings,
		cache:    p.Cache,
		now:      time.Now,
	}
}

// Summary computes (or serves cached) windowed analytics for the user. A
// record-store failure falls back to aggregating synthetic earnings so the
// dashboard always has something to chart; the fallback result is cached too.
func (s *Service) Summary(ctx context.Context, userID, rangeToken string, refresh bool) (*Summary, provider.Source, error) {
	w, err := ParseWindow(rangeToken)
	if err != nil {
		return nil, provider.SourceLive, err
	}

	key := cache.Key(view, userID, rangeFilter{Range: w.Token})
	if refresh {
		s.cache.Clear(key)
	}

	v, err := s.cache.Do(key, func() (any, error) {
		now := s.now()
		since := now.UTC().AddDate(0, 0, -(w.Days - 1)).Format(earning.DateLayout)

		source := provider.SourceLive
		records, err := s.earnings.InWindow(ctx, userID, since)
		switch {
		case errors.Is(err, provider.ErrUnavailable):
			zap.L().Warn("record store unavailable, aggregating fallback earnings",
				zap.String("user_id", userID), zap.String("range", w.Token), zap.Error(err))
			records = s.earnings.Synthetic(userID, 20)
			source = provider.SourceFallback
		case err != nil:
			return nil, err
		}

		return result{
			summary: Summarize(records, w.Days, now),
			source:  source,
		}, nil
	})
	if err != nil {
		return nil, provider.SourceLive, err
	}

	res := v.(result)
	return res.summary, res.source, nil
}
