// Package staging moves dogs through the adoption pipeline. The API server
// enqueues one delayed task per stage at creation time; the worker consumes
// them and records the reached stage in the status store.
package staging

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeAdvanceStage is the single task kind the staging queue carries.
const TypeAdvanceStage = "stage:advance"

// QueueName is the asynq queue the staging tasks go through.
const QueueName = "staging"

// AdvanceStagePayload is the typed command executed by the worker: record
// that the named dog has reached the given stage.
type AdvanceStagePayload struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
}

// NewAdvanceStageTask builds an asynq task carrying an AdvanceStagePayload.
func NewAdvanceStageTask(name, stage string) (*asynq.Task, error) {
	payload, err := json.Marshal(AdvanceStagePayload{Name: name, Stage: stage})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(TypeAdvanceStage, payload), nil
}

// ParseAdvanceStagePayload decodes a task payload produced by
// NewAdvanceStageTask.
func ParseAdvanceStagePayload(data []byte) (AdvanceStagePayload, error) {
	var p AdvanceStagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return AdvanceStagePayload{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	return p, nil
}
