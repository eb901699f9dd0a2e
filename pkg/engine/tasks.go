package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Task is a deferred unit of work. Label is the phase name shown while it
// runs.
type Task struct {
	Label string
	Run   func(ctx context.Context) error
}

// TaskQueue is the engine's deferred task queue. Tasks execute in submission
// order; long-running work (map generation, save deserialization) is always
// routed through here rather than run inline.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []Task
	log   logrus.FieldLogger
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue(log logrus.FieldLogger) *TaskQueue {
	return &TaskQueue{log: log}
}

// Enqueue appends a task tagged with a phase label.
func (q *TaskQueue) Enqueue(label string, fn func(ctx context.Context) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, Task{Label: label, Run: fn})
}

// Len returns the number of queued tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Labels returns the phase labels of all queued tasks in order.
func (q *TaskQueue) Labels() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	labels := make([]string, len(q.tasks))
	for i, t := range q.tasks {
		labels[i] = t.Label
	}
	return labels
}

// ExecuteAll drains the queue in submission order. Tasks enqueued while
// draining run in the same pass. Execution stops at the first failure.
func (q *TaskQueue) ExecuteAll(ctx context.Context) error {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return nil
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		q.log.WithField("phase", task.Label).Debug("running deferred task")
		if err := task.Run(ctx); err != nil {
			return fmt.Errorf("task %q: %w", task.Label, err)
		}
	}
}
