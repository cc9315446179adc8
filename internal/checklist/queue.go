package checklist

import (
	"context"
	"sync"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// queuedWrite is one pending persistence write for a task.
type queuedWrite struct {
	taskID string
	update model.TaskUpdate
	stage  model.Stage
	origin model.Origin
}

// writeQueue keeps at most one write in flight per task. Edits queued for a
// task with a write already in flight coalesce into a single pending write,
// the latest value of each field winning, dispatched when the in-flight one
// settles.
type writeQueue struct {
	dispatch func(ctx context.Context, w queuedWrite) (string, error)
	logger   log.Logger

	mu       sync.Mutex
	pending  map[string]queuedWrite
	inFlight map[string]bool
	wg       sync.WaitGroup

	errMu   sync.Mutex
	lastErr error
}

func newWriteQueue(dispatch func(ctx context.Context, w queuedWrite) (string, error), logger log.Logger) *writeQueue {
	return &writeQueue{
		dispatch: dispatch,
		logger:   logger,
		pending:  map[string]queuedWrite{},
		inFlight: map[string]bool{},
	}
}

func (q *writeQueue) enqueue(ctx context.Context, w queuedWrite) {
	q.mu.Lock()
	if q.inFlight[w.taskID] {
		if prev, ok := q.pending[w.taskID]; ok {
			w.update = prev.update.Merge(w.update)
		}
		q.pending[w.taskID] = w
		q.mu.Unlock()
		return
	}
	q.inFlight[w.taskID] = true
	q.mu.Unlock()

	q.wg.Add(1)
	go q.run(ctx, w)
}

func (q *writeQueue) run(ctx context.Context, w queuedWrite) {
	defer q.wg.Done()

	for {
		newID, err := q.dispatch(ctx, w)
		if err != nil {
			q.logger.Warningf("Queued write for task %s failed: %s", w.taskID, err)
			q.setErr(err)
		}
		if newID == "" {
			newID = w.taskID
		}

		q.mu.Lock()
		next, ok := q.pending[w.taskID]
		delete(q.pending, w.taskID)
		delete(q.inFlight, w.taskID)
		if !ok {
			q.mu.Unlock()
			return
		}

		// Materialization may have renamed the task while this write was
		// pending; follow the id forward.
		next.taskID = newID
		q.inFlight[newID] = true
		q.mu.Unlock()

		w = next
	}
}

func (q *writeQueue) setErr(err error) {
	q.errMu.Lock()
	q.lastErr = err
	q.errMu.Unlock()
}

// flush waits for in-flight and pending writes to settle, then returns and
// clears the last dispatch error.
func (q *writeQueue) flush() error {
	q.wg.Wait()

	q.errMu.Lock()
	defer q.errMu.Unlock()
	err := q.lastErr
	q.lastErr = nil

	return err
}
