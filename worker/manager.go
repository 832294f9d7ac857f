package worker

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// Worker is a long-running task. Start blocks until ctx is done or the task fails.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs every worker and waits for all of them to return. The first
// worker error cancels the others and is returned.
func (m *Manager) Start(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for _, w := range m.workers {
		p.Go(w.Start)
	}
	return p.Wait()
}
