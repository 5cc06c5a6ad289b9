package staging

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/status"
)

// Handler processes AdvanceStage tasks on the worker side.
type Handler struct {
	store  status.Store
	logger logging.Logger
}

func NewHandler(store status.Store, logger logging.Logger) *Handler {
	return &Handler{store: store, logger: logger.With("module", "staging_handler")}
}

// HandleAdvanceStage writes the task's stage into the status store,
// unconditionally overwriting any prior value.
//
// A store write failure is returned to asynq so its retry policy applies.
// An undecodable payload is a poison task: it is logged and dropped via
// asynq.SkipRetry, since retrying cannot fix it.
func (h *Handler) HandleAdvanceStage(ctx context.Context, t *asynq.Task) error {
	p, err := ParseAdvanceStagePayload(t.Payload())
	if err != nil {
		h.logger.Error(ctx, "dropping undecodable stage task", "error", err.Error())
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.store.Set(ctx, p.Name, p.Stage); err != nil {
		return fmt.Errorf("advance stage %q for %q: %w", p.Stage, p.Name, err)
	}

	// The reached stage doubles as the task result.
	if w := t.ResultWriter(); w != nil {
		if _, err := w.Write([]byte(p.Stage)); err != nil {
			h.logger.Warn(ctx, "writing task result", "error", err.Error())
		}
	}

	h.logger.Info(ctx, "stage advanced", "name", p.Name, "stage", p.Stage)
	return nil
}
