package opportunity

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"earnhub/pkg/cache"
	"earnhub/pkg/db/option"
	"earnhub/pkg/provider"
	"earnhub/pkg/repository"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const view = "opportunities"

// maxListed caps one listing; the dashboard never pages opportunities.
const maxListed = 50

type result struct {
	opportunities []*Opportunity
	source        provider.Source
}

type Service struct {
	repo  repository.Repository[Opportunity]
	cache *cache.Cache
	rand  *rand.Rand
}

type ServiceParams struct {
	fx.In
	DB    *gorm.DB
	Cache *cache.Cache
}

func NewService(p ServiceParams) *Service {
	return &Service{
		repo:  repository.ProvideStore[Opportunity](p.DB),
		cache: p.Cache,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List returns the user's opportunities ranked by score, highest first.
// Store failures fall back to the synthetic catalog.
func (s *Service) List(ctx context.Context, userID string, f Filters, refresh bool) ([]*Opportunity, provider.Source, error) {
	key := cache.Key(view, userID, f)
	if refresh {
		s.cache.Clear(key)
	}

	v, err := s.cache.Do(key, func() (any, error) {
		opportunities, err := s.repo.Find(ctx, &Opportunity{
			UserID:   userID,
			Category: f.Category,
			Trend:    f.Trend,
		}, option.OrderBy("ranking_score DESC"), option.Limit(maxListed))
		if err != nil {
			zap.L().Warn("record store unavailable, serving fallback opportunities",
				zap.String("user_id", userID), zap.Error(err))
			return result{
				opportunities: s.fallback(userID, f),
				source:        provider.SourceFallback,
			}, nil
		}

		return result{opportunities: opportunities, source: provider.SourceLive}, nil
	})
	if err != nil {
		return nil, provider.SourceLive, err
	}

	res := v.(result)
	return res.opportunities, res.source, nil
}

// Recommended returns the top scored opportunities for the user.
func (s *Service) Recommended(ctx context.Context, userID string, limit int) ([]*Opportunity, provider.Source, error) {
	opportunities, source, err := s.List(ctx, userID, Filters{}, false)
	if err != nil {
		return nil, source, err
	}

	if limit > 0 && len(opportunities) > limit {
		opportunities = opportunities[:limit]
	}

	return opportunities, source, nil
}

func (s *Service) fallback(userID string, f Filters) []*Opportunity {
	opportunities := generateFallback(userID, s.rand)

	filtered := opportunities[:0]
	for _, opp := range opportunities {
		if f.Category != "" && opp.Category != f.Category {
			continue
		}
		if f.Trend != "" && opp.Trend != f.Trend {
			continue
		}
		filtered = append(filtered, opp)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].RankingScore > filtered[j].RankingScore
	})

	return filtered
}
