package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strconv"
	"sync"

	"productComposite/internal/modules/composite/application/port"
)

type dispatchTask struct {
	topic string
	key   int
	event any
	done  chan error
}

// Dispatcher hands change events to the message channel from a bounded pool
// of workers, off the caller's request path. Events are routed to a worker
// by hashing their key, so events sharing a key are published in the order
// Dispatch was invoked; events with different keys have no relative order.
//
// Dispatch resolves as soon as the task is accepted, modeling a 202: the
// returned channel is the completion handle and receives the outcome of the
// serialization and publish steps. Failures are reported there, never
// retried here, and never disturb later dispatches.
type Dispatcher struct {
	publisher port.EventPublisher
	queues    []chan dispatchTask
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(publisher port.EventPublisher, workers, queueDepth int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueDepth <= 0 {
		queueDepth = 64
	}
	d := &Dispatcher{
		publisher: publisher,
		queues:    make([]chan dispatchTask, workers),
	}
	for i := range d.queues {
		d.queues[i] = make(chan dispatchTask, queueDepth)
		d.wg.Add(1)
		go d.work(d.queues[i])
	}
	return d
}

// Dispatch enqueues one event for publication on the named topic. It returns
// once the event is accepted; the completion channel yields exactly one
// value. An error is returned only when the context ends before acceptance.
func (d *Dispatcher) Dispatch(ctx context.Context, topic string, key int, event any) (<-chan error, error) {
	done := make(chan error, 1)
	task := dispatchTask{topic: topic, key: key, event: event, done: done}

	select {
	case d.queues[d.queueFor(key)] <- task:
		return done, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("dispatch to %s not accepted: %w", topic, ctx.Err())
	}
}

// Close stops accepting work and waits for in-flight publishes to finish.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		for _, q := range d.queues {
			close(q)
		}
	})
	d.wg.Wait()
}

func (d *Dispatcher) queueFor(key int) int {
	h := fnv.New32a()
	h.Write([]byte(strconv.Itoa(key)))
	return int(h.Sum32() % uint32(len(d.queues)))
}

func (d *Dispatcher) work(queue <-chan dispatchTask) {
	defer d.wg.Done()
	for task := range queue {
		task.done <- d.publish(task)
	}
}

func (d *Dispatcher) publish(task dispatchTask) error {
	value, err := json.Marshal(task.event)
	if err != nil {
		slog.Error("event marshal failed", slog.String("topic", task.topic), slog.Int("key", task.key), slog.Any("error", err))
		return fmt.Errorf("marshal event for %s: %w", task.topic, err)
	}

	// The handoff has no hard timeout; a stuck channel is a liveness bug
	// that surfaces in the logs, not something to drop silently.
	if err := d.publisher.Publish(context.Background(), task.topic, []byte(strconv.Itoa(task.key)), value); err != nil {
		slog.Error("event publish failed", slog.String("topic", task.topic), slog.Int("key", task.key), slog.Any("error", err))
		return fmt.Errorf("publish to %s: %w", task.topic, err)
	}

	slog.Debug("event published", slog.String("topic", task.topic), slog.Int("key", task.key))
	return nil
}
