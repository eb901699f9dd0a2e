package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestTaskQueueRunsInSubmissionOrder(t *testing.T) {
	queue := NewTaskQueue(logrus.StandardLogger())

	var ran []string
	for _, label := range []string{"first", "second", "third"} {
		label := label
		queue.Enqueue(label, func(ctx context.Context) error {
			ran = append(ran, label)
			return nil
		})
	}

	if got := queue.Labels(); !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("Labels() = %v", got)
	}

	if err := queue.ExecuteAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ran, []string{"first", "second", "third"}) {
		t.Errorf("execution order = %v", ran)
	}
	if queue.Len() != 0 {
		t.Errorf("queue not drained: %d left", queue.Len())
	}
}

func TestTaskQueueRunsTasksEnqueuedWhileDraining(t *testing.T) {
	queue := NewTaskQueue(logrus.StandardLogger())

	var ran []string
	queue.Enqueue("outer", func(ctx context.Context) error {
		ran = append(ran, "outer")
		queue.Enqueue("inner", func(ctx context.Context) error {
			ran = append(ran, "inner")
			return nil
		})
		return nil
	})

	if err := queue.ExecuteAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ran, []string{"outer", "inner"}) {
		t.Errorf("execution order = %v", ran)
	}
}

func TestTaskQueueStopsOnFailure(t *testing.T) {
	queue := NewTaskQueue(logrus.StandardLogger())

	boom := errors.New("boom")
	var reached bool
	queue.Enqueue("fails", func(ctx context.Context) error { return boom })
	queue.Enqueue("after", func(ctx context.Context) error {
		reached = true
		return nil
	})

	err := queue.ExecuteAll(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("ExecuteAll() = %v, want wrapped boom", err)
	}
	if reached {
		t.Error("task after the failure still ran")
	}
}
