package earning

import (
	"context"
	"fmt"
	"time"

	"earnhub/pkg/cache"
	"earnhub/pkg/db/option"
	"earnhub/pkg/db/pagination"
	"earnhub/pkg/errutil"
	"earnhub/pkg/provider"
	"earnhub/pkg/repository"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const view = "earnings"

const fallbackCount = 20

// Page is the cached unit for an earnings listing.
type Page struct {
	Records  []*Record            `json:"earnings"`
	PageInfo *pagination.PageInfo `json:"page_info"`
}

// result pairs a page with the path that produced it, so a cached fallback
// page stays labelled as fallback on later hits.
type result struct {
	page   *Page
	source provider.Source
}

type Service struct {
	repo  repository.Repository[Record]
	cache *cache.Cache
	gen   *Generator
	node  *snowflake.Node
	now   func() time.Time
}

type ServiceParams struct {
	fx.In
	DB    *gorm.DB
	Cache *cache.Cache
	Node  *snowflake.Node
}

func NewService(p ServiceParams) *Service {
	return &Service{
		repo:  repository.ProvideStore[Record](p.DB),
		cache: p.Cache,
		gen:   NewGenerator(0),
		node:  p.Node,
		now:   time.Now,
	}
}

// List returns the user's earnings page for the given filters. Cache hit
// short-circuits; a record-store failure is downgraded to synthetic fallback
// data, which is cached too so the store is not hammered within the TTL.
func (s *Service) List(ctx context.Context, userID string, f Filters, refresh bool) (*Page, provider.Source, error) {
	key := cache.Key(view, userID, f)
	if refresh {
		s.cache.Clear(key)
	}

	v, err := s.cache.Do(key, func() (any, error) {
		page, src, err := s.load(ctx, userID, f)
		if err != nil {
			return nil, err
		}
		return result{page: page, source: src}, nil
	})
	if err != nil {
		return nil, provider.SourceLive, err
	}

	res := v.(result)
	return res.page, res.source, nil
}

func (s *Service) load(ctx context.Context, userID string, f Filters) (*Page, provider.Source, error) {
	opts := []option.QueryOption{
		option.OrderBy("date DESC, id DESC"),
		option.DateBetweenStrings("date", f.From, f.To),
		option.ApplyPagination(pagination.Pagination{Limit: f.Limit, Cursor: f.Cursor}),
	}

	records, err := s.repo.Find(ctx, &Record{
		UserID:     userID,
		Platform:   f.Platform,
		SourceType: f.SourceType,
	}, opts...)
	if err != nil {
		zap.L().Warn("record store unavailable, serving fallback earnings",
			zap.String("user_id", userID), zap.Error(err))
		return s.fallback(userID, f), provider.SourceFallback, nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	records, pageInfo := pagination.BuildCursorPageInfo(records, limit, func(r *Record) pagination.Cursor {
		return pagination.Cursor{Date: r.Date, ID: r.ID}
	})

	return &Page{Records: records, PageInfo: pageInfo}, provider.SourceLive, nil
}

func (s *Service) fallback(userID string, f Filters) *Page {
	records := s.gen.Generate(userID, fallbackCount)

	return &Page{
		Records:  records,
		PageInfo: &pagination.PageInfo{HasMore: false},
	}
}

// Synthetic exposes generated fallback records for consumers with their own
// fallback policy, such as the analytics service.
func (s *Service) Synthetic(userID string, count int) []*Record {
	return s.gen.Generate(userID, count)
}

// SyntheticForPlatform generates a batch pinned to one platform, used by the
// platform sync task.
func (s *Service) SyntheticForPlatform(userID, platform string, count int) []*Record {
	return s.gen.GenerateForPlatform(userID, platform, count)
}

// InWindow fetches every record for the user dated on or after since.
// Consumed by the analytics service; store failures surface as
// provider.ErrUnavailable so its own fallback policy can kick in.
func (s *Service) InWindow(ctx context.Context, userID, since string) ([]*Record, error) {
	records, err := s.repo.Find(ctx, &Record{UserID: userID},
		option.OrderBy("date ASC, id ASC"),
		option.DateBetweenStrings("date", since, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
	}
	return records, nil
}

// Add records a manual earning entry.
func (s *Service) Add(ctx context.Context, userID string, in AddInput) (*Record, error) {
	if in.Amount < 0 {
		return nil, errutil.ValidationFailed("amount must not be negative")
	}

	date, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return nil, errutil.ValidationFailed("date must be formatted YYYY-MM-DD")
	}

	if date.After(s.now().UTC().Truncate(24 * time.Hour)) {
		return nil, errutil.ValidationFailed("date must not be in the future")
	}

	if !ValidSourceType(in.SourceType) {
		return nil, errutil.ValidationFailed("unknown source type")
	}

	record := &Record{
		ID:         s.node.Generate().String(),
		UserID:     userID,
		Platform:   in.Platform,
		Task:       in.Task,
		Amount:     in.Amount,
		Date:       in.Date,
		SourceType: in.SourceType,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		zap.L().Error("failed to create earning record", zap.String("user_id", userID), zap.Error(err))
		return nil, errutil.Internal("failed to create earning record")
	}

	s.Invalidate(userID)

	return record, nil
}

// Delete removes one earning record owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	n, err := s.repo.Delete(ctx, &Record{ID: id, UserID: userID})
	if err != nil {
		zap.L().Error("failed to delete earning record", zap.String("earning_id", id), zap.Error(err))
		return errutil.Internal("failed to delete earning record")
	}

	if n == 0 {
		return errutil.NotFound("earning record not found")
	}

	s.Invalidate(userID)

	return nil
}

// Insert persists a batch of synced records. Used by the platform sync task.
func (s *Service) Insert(ctx context.Context, records []*Record) error {
	for _, r := range records {
		r.ID = s.node.Generate().String()
	}

	if err := s.repo.BatchCreate(ctx, records); err != nil {
		return err
	}

	if len(records) > 0 {
		s.Invalidate(records[0].UserID)
	}

	return nil
}

// Invalidate drops every cached earnings and analytics view for the user.
func (s *Service) Invalidate(userID string) {
	s.cache.ClearPrefix(cache.KeyPrefix(view, userID))
	s.cache.ClearPrefix(cache.KeyPrefix("analytics", userID))
}
