package tasks

import (
	"context"
	"log"
	"sync"
)

type job struct {
	name string
	run  func(context.Context) error
}

// Queue runs best-effort background jobs on a fixed pool of workers over
// a bounded channel. Job failures go to the log and are never reported to
// whoever submitted them.
type Queue struct {
	jobs   chan job
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
}

func New(workers, capacity int) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		jobs:   make(chan job, capacity),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		if err := j.run(q.ctx); err != nil {
			log.Printf("[tasks] %s: %v", j.name, err)
		}
	}
}

// Submit enqueues fn without blocking; when the queue is full the job is
// dropped and logged. Returns whether the job was accepted.
func (q *Queue) Submit(name string, fn func(context.Context) error) bool {
	select {
	case q.jobs <- job{name: name, run: fn}:
		return true
	default:
		log.Printf("[tasks] queue full, dropped %s", name)
		return false
	}
}

// Close stops intake, drains queued jobs and waits for the workers.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.jobs)
		q.wg.Wait()
		q.cancel()
	})
}
