package automation

import (
	"context"
	"encoding/json"

	"earnhub/pkg/taskname"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RunPayload is the wire body of an automation:run task.
type RunPayload struct {
	AutomationID string `json:"automation_id"`
	UserID       string `json:"user_id"`
}

func NewRunPayload(automationID, userID string) ([]byte, error) {
	return json.Marshal(RunPayload{AutomationID: automationID, UserID: userID})
}

// RegisterHandlers mounts the automation task handlers on the worker mux.
func RegisterHandlers(mux *asynq.ServeMux, svc *Service) {
	mux.HandleFunc(taskname.AutomationRun, func(ctx context.Context, t *asynq.Task) error {
		var p RunPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			zap.L().Error("invalid automation run payload", zap.Error(err))
			return err
		}

		zap.L().Info("running automation",
			zap.String("automation_id", p.AutomationID), zap.String("user_id", p.UserID))

		return svc.Run(ctx, p.UserID, p.AutomationID)
	})
}
