package platform

import (
	"context"
	"time"

	"earnhub/pkg/db/option"
	"earnhub/pkg/errutil"
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

// syncBatchSize is how many records one sync cycle pulls from a platform.
const syncBatchSize = 5

type Service struct {
	repo     repository.Repository[Connection]
	node     *snowflake.Node
	enqueuer task.Enqueuer
	earnings *earning.Service
	now      func() time.Time
}

type ServiceParams struct {
	fx.In
	DB       *gorm.DB
	Node     *snowflake.Node
	Enqueuer task.Enqueuer `optional:"true"`
	Earnings *earning.Service
}

func NewService(p ServiceParams) *Service {
	return &Service{
		repo:     repository.ProvideStore[Connection](p.DB),
		node:     p.Node,
		enqueuer: p.Enqueuer,
		earnings: p.Earnings,
		now:      time.Now,
	}
}

// Connections lists the user's platform connections, newest first.
func (s *Service) Connections(ctx context.Context, userID string) ([]*Connection, error) {
	connections, err := s.repo.Find(ctx, &Connection{UserID: userID},
		option.OrderBy("created_at DESC"))
	if err != nil {
		zap.L().Error("failed to list platform connections", zap.String("user_id", userID), zap.Error(err))
		return nil, errutil.Internal("failed to list platform connections")
	}
	return connections, nil
}

// Connect links the user to a catalog platform. Reconnecting an existing
// link just flips it back to connected.
func (s *Service) Connect(ctx context.Context, userID, platformID string) (*Connection, error) {
	info, ok := Lookup(platformID)
	if !ok {
		return nil, errutil.NotFound("unknown platform")
	}

	existing, err := s.repo.FindOne(ctx, &Connection{UserID: userID, PlatformID: platformID})
	if err != nil {
		zap.L().Error("failed to look up platform connection", zap.String("user_id", userID), zap.Error(err))
		return nil, errutil.Internal("failed to connect platform")
	}

	if existing != nil {
		existing.Status = StatusConnected
		if err := s.repo.Update(ctx, existing.ID, existing); err != nil {
			return nil, errutil.Internal("failed to connect platform")
		}
		return existing, nil
	}

	connection := &Connection{
		ID:           s.node.Generate().String(),
		UserID:       userID,
		PlatformID:   info.ID,
		PlatformName: info.Name,
		Status:       StatusConnected,
	}

	if err := s.repo.Create(ctx, connection); err != nil {
		zap.L().Error("failed to create platform connection", zap.String("user_id", userID), zap.Error(err))
		return nil, errutil.Internal("failed to connect platform")
	}

	return connection, nil
}

// Disconnect marks the user's connection to a platform as disconnected.
// The connection row is kept so sync history survives.
func (s *Service) Disconnect(ctx context.Context, userID, platformID string) (*Connection, error) {
	connection, err := s.connection(ctx, userID, platformID)
	if err != nil {
		return nil, err
	}

	connection.Status = StatusDisconnected
	if err := s.repo.Update(ctx, connection.ID, connection); err != nil {
		zap.L().Error("failed to disconnect platform", zap.String("platform_id", platformID), zap.Error(err))
		return nil, errutil.Internal("failed to disconnect platform")
	}

	return connection, nil
}

// Sync schedules a background pull of the user's earnings from a connected
// platform.
func (s *Service) Sync(ctx context.Context, userID, platformID string) error {
	connection, err := s.connection(ctx, userID, platformID)
	if err != nil {
		return err
	}

	if connection.Status != StatusConnected {
		return errutil.Conflict("platform is not connected")
	}

	if s.enqueuer == nil {
		return errutil.Unavailable("sync worker is not configured")
	}

	payload, err := NewSyncPayload(connection.ID, userID, connection.PlatformName)
	if err != nil {
		return err
	}

	if _, err := s.enqueuer.Enqueue(asynq.NewTask(taskname.PlatformSync, payload)); err != nil {
		zap.L().Error("failed to enqueue platform sync",
			zap.String("platform_id", platformID), zap.Error(err))
		return errutil.Internal("failed to schedule platform sync")
	}

	return nil
}

// RunSync pulls a batch of earnings from the platform, persists it and
// stamps the connection. Executed by the worker.
func (s *Service) RunSync(ctx context.Context, connectionID, userID, platformName string) error {
	records := s.earnings.SyntheticForPlatform(userID, platformName, syncBatchSize)

	if err := s.earnings.Insert(ctx, records); err != nil {
		return err
	}

	now := s.now().UTC()
	return s.repo.Update(ctx, connectionID, &Connection{LastSyncedAt: &now})
}

func (s *Service) connection(ctx context.Context, userID, platformID string) (*Connection, error) {
	connection, err := s.repo.FindOne(ctx, &Connection{UserID: userID, PlatformID: platformID})
	if err != nil {
		zap.L().Error("failed to look up platform connection", zap.String("platform_id", platformID), zap.Error(err))
		return nil, errutil.Internal("failed to look up platform connection")
	}
	if connection == nil {
		return nil, errutil.NotFound("platform connection not found")
	}
	return connection, nil
}
