package automation

import (
	"context"
	"time"

	"earnhub/pkg/cache"
	"earnhub/pkg/db/option"
	"earnhub/pkg/errutil"
	"earnhub/pkg/provider"
	"earnhub/pkg/repository"
	"earnhub/pkg/task"
	"earnhub/pkg/taskname"
	"earnhub/services/earning"

	"github.com/bwmarrin/snowflake"
	"github.com/hibiken/asynq"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const view = "automations"

type result struct {
	automations []*Automation
	source      provider.Source
}

type Service struct {
	repo     repository.Repository[Automation]
	cache    *cache.Cache
	node     *snowflake.Node
	enqueuer task.Enqueuer
	earnings *earning.Service
	now      func() time.Time
}

type ServiceParams struct {
	fx.In
	DB       *gorm.DB
	Cache    *cache.Cache
	Node     *snowflake.Node
	Enqueuer task.Enqueuer `optional:"true"`
	Earnings *earning.Service
}

func NewService(p ServiceParams) *Service {
	return &Service{
		repo:     repository.ProvideStore[Automation](p.DB),
		cache:    p.Cache,
		node:     p.Node,
		enqueuer: p.Enqueuer,
		earnings: p.Earnings,
		now:      time.Now,
	}
}

// List returns the user's automations, newest first. Store failures fall
// back to a synthetic set so the dashboard keeps rendering.
func (s *Service) List(ctx context.Context, userID string, refresh bool) ([]*Automation, provider.Source, error) {
	key := cache.Key(view, userID, nil)
	if refresh {
		s.cache.Clear(key)
	}

	v, err := s.cache.Do(key, func() (any, error) {
		automations, err := s.repo.Find(ctx, &Automation{UserID: userID},
			option.OrderBy("created_at DESC"))
		if err != nil {
			zap.L().Warn("record store unavailable, serving fallback automations",
				zap.String("user_id", userID), zap.Error(err))
			return result{
				automations: fallbackAutomations(userID, s.now().UTC()),
				source:      provider.SourceFallback,
			}, nil
		}

		return result{automations: automations, source: provider.SourceLive}, nil
	})
	if err != nil {
		return nil, provider.SourceLive, err
	}

	res := v.(result)
	return res.automations, res.source, nil
}

// Create registers a new automation in paused state.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*Automation, error) {
	automation := &Automation{
		ID:          s.node.Generate().String(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Platform:    in.Platform,
		Status:      StatusPaused,
		Frequency:   in.Frequency,
		Rules:       in.Rules,
	}

	if err := s.repo.Create(ctx, automation); err != nil {
		zap.L().Error("failed to create automation", zap.String("user_id", userID), zap.Error(err))
		return nil, errutil.Internal("failed to create automation")
	}

	s.cache.Clear(cache.Key(view, userID, nil))

	return automation, nil
}

// Toggle flips an automation between active and paused. Activating one
// schedules an immediate run.
func (s *Service) Toggle(ctx context.Context, userID, id string) (*Automation, error) {
	automation, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if automation.Status == StatusActive {
		automation.Status = StatusPaused
	} else {
		automation.Status = StatusActive
	}

	if err := s.repo.Update(ctx, automation.ID, automation); err != nil {
		zap.L().Error("failed to update automation", zap.String("automation_id", id), zap.Error(err))
		return nil, errutil.Internal("failed to update automation")
	}

	s.cache.Clear(cache.Key(view, userID, nil))

	if automation.Status == StatusActive && s.enqueuer != nil {
		payload, err := NewRunPayload(automation.ID, userID)
		if err != nil {
			return nil, err
		}
		if _, err := s.enqueuer.Enqueue(asynq.NewTask(taskname.AutomationRun, payload)); err != nil {
			zap.L().Warn("failed to enqueue automation run",
				zap.String("automation_id", id), zap.Error(err))
		}
	}

	return automation, nil
}

// Delete removes one automation owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	n, err := s.repo.Delete(ctx, &Automation{ID: id, UserID: userID})
	if err != nil {
		zap.L().Error("failed to delete automation", zap.String("automation_id", id), zap.Error(err))
		return errutil.Internal("failed to delete automation")
	}

	if n == 0 {
		return errutil.NotFound("automation not found")
	}

	s.cache.Clear(cache.Key(view, userID, nil))

	return nil
}

// Run executes one automation cycle: it books a small simulated earning for
// the automation's platform, stamps the run time and accumulates the total.
// Paused automations are skipped without error so stale queue entries drain
// quietly.
func (s *Service) Run(ctx context.Context, userID, id string) error {
	automation, err := s.get(ctx, userID, id)
	if err != nil {
		return err
	}

	if automation.Status != StatusActive {
		zap.L().Info("skipping run for inactive automation", zap.String("automation_id", id))
		return nil
	}

	records := s.earnings.Synthetic(userID, 1)
	records[0].Platform = automation.Platform
	records[0].Task = automation.Name
	records[0].Date = s.now().UTC().Format(earning.DateLayout)

	if err := s.earnings.Insert(ctx, records); err != nil {
		return err
	}

	now := s.now().UTC()
	automation.LastRun = &now
	automation.Earnings += records[0].Amount

	if err := s.repo.Update(ctx, automation.ID, automation); err != nil {
		return err
	}

	s.cache.Clear(cache.Key(view, userID, nil))

	return nil
}

func (s *Service) get(ctx context.Context, userID, id string) (*Automation, error) {
	automation, err := s.repo.FindOne(ctx, &Automation{ID: id, UserID: userID})
	if err != nil {
		zap.L().Error("failed to load automation", zap.String("automation_id", id), zap.Error(err))
		return nil, errutil.Internal("failed to load automation")
	}
	if automation == nil {
		return nil, errutil.NotFound("automation not found")
	}
	return automation, nil
}
