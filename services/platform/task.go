package platform

import (
	"context"
	"encoding/json"

	"earnhub/pkg/taskname"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SyncPayload is the wire body of a platform:sync task.
type SyncPayload struct {
	ConnectionID string `json:"connection_id"`
	UserID       string `json:"user_id"`
	PlatformName string `json:"platform_name"`
}

func NewSyncPayload(connectionID, userID, platformName string) ([]byte, error) {
	return json.Marshal(SyncPayload{
		ConnectionID: connectionID,
		UserID:       userID,
		PlatformName: platformName,
	})
}

// RegisterHandlers mounts the platform task handlers on the worker mux.
func RegisterHandlers(mux *asynq.ServeMux, svc *Service) {
	mux.HandleFunc(taskname.PlatformSync, func(ctx context.Context, t *asynq.Task) error {
		var p SyncPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			zap.L().Error("invalid platform sync payload", zap.Error(err))
			return err
		}

		zap.L().Info("syncing platform earnings",
			zap.String("connection_id", p.ConnectionID), zap.String("platform", p.PlatformName))

		return svc.RunSync(ctx, p.ConnectionID, p.UserID, p.PlatformName)
	})
}
