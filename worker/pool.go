// Package worker provides the dispatcher used for best-effort side effects
// (emails, ledger writes). The contract is at-most-once with no completion
// guarantee: a full queue drops the task and nothing is retried.
package worker

import "sync"

// Dispatcher submits a task for execution.
type Dispatcher interface {
	Dispatch(task func())
}

// Pool is a bounded worker pool. Tasks may run in any order relative to one
// another; callers must not depend on ordering or completion.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	dropped func()
}

// NewPool starts a pool with the given number of workers and queue depth.
// onDrop, if non-nil, is called whenever a task is discarded on a full queue.
func NewPool(workers, queueSize int, onDrop func()) *Pool {
	p := &Pool{
		tasks:   make(chan func(), queueSize),
		dropped: onDrop,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Dispatch queues a task. If the queue is full the task is dropped.
func (p *Pool) Dispatch(task func()) {
	select {
	case p.tasks <- task:
	default:
		if p.dropped != nil {
			p.dropped()
		}
	}
}

// Close stops accepting tasks and waits for queued work to finish.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}

// Sync runs tasks inline, in submission order. Used where background work
// is not guaranteed to survive past the triggering response.
type Sync struct{}

// Dispatch runs the task before returning.
func (Sync) Dispatch(task func()) { task() }
