package staging

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/avolkov/dogshelter/internal/common"
)

// Enqueuer is the subset of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler enqueues the delayed stage-advancement tasks for a dog.
//
// Stage i is enqueued with delay i*interval, so for interval > 0 delays are
// strictly increasing and, under prompt workers, the status store converges
// to the last stage in the list. The queue gives no hard ordering guarantee;
// callers are expected to schedule each dog exactly once, at creation time.
type Scheduler struct {
	client   Enqueuer
	stages   []string
	interval time.Duration
	maxRetry int
}

func NewScheduler(client Enqueuer, stages []string, interval time.Duration, maxRetry int) *Scheduler {
	return &Scheduler{
		client:   client,
		stages:   stages,
		interval: interval,
		maxRetry: maxRetry,
	}
}

// ScheduleStages enqueues one AdvanceStage task per configured stage.
// An enqueue failure aborts the remaining stages and is reported as
// common.ErrorTaskDelivery so the creating request can fail loudly instead
// of leaving progression silently incomplete.
func (s *Scheduler) ScheduleStages(ctx context.Context, name string) error {
	for i, stage := range s.stages {
		task, err := NewAdvanceStageTask(name, stage)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrorTaskDelivery, err)
		}

		_, err = s.client.EnqueueContext(ctx, task,
			asynq.Queue(QueueName),
			asynq.ProcessIn(time.Duration(i)*s.interval),
			asynq.MaxRetry(s.maxRetry),
		)
		if err != nil {
			return fmt.Errorf("%w: enqueue stage %q: %v", common.ErrorTaskDelivery, stage, err)
		}
	}

	return nil
}
