package viewstate

import (
	"context"
	"sync"
)

// job is a unit of serialized work. It must call resume exactly once, possibly from another goroutine,
// before the next job is started.
type job struct {
	run     func(resume func())
	discard func()
}

// serialQueue runs jobs in FIFO order, one at a time, on a single owned goroutine.
// Instances must be initialized using newSerialQueue.
type serialQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wake   chan struct{}

	mu   sync.Mutex
	jobs []job
}

func newSerialQueue() *serialQueue {
	q := serialQueue{
		done: make(chan struct{}),
		wake: make(chan struct{}, 1),
	}
	q.ctx, q.cancel = context.WithCancel(context.Background())

	go q.run()

	return &q
}

// push appends a job, never blocking. It reports false if the queue is closed, in which case the job
// is discarded immediately.
func (q *serialQueue) push(j job) bool {
	q.mu.Lock()
	if q.ctx.Err() != nil {
		q.mu.Unlock()
		if j.discard != nil {
			j.discard()
		}
		return false
	}
	q.jobs = append(q.jobs, j)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return true
}

// close stops the worker, discarding queued jobs, and blocks until it exits. A job that is suspended
// waiting for resume is abandoned.
func (q *serialQueue) close() {
	q.mu.Lock()
	q.cancel()
	pending := q.jobs
	q.jobs = nil
	q.mu.Unlock()

	<-q.done

	for _, j := range pending {
		if j.discard != nil {
			j.discard()
		}
	}
}

func (q *serialQueue) pop() (job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) == 0 {
		return job{}, false
	}
	j := q.jobs[0]
	q.jobs[0] = job{}
	q.jobs = q.jobs[1:]
	return j, true
}

func (q *serialQueue) run() {
	defer close(q.done)

	for {
		j, ok := q.pop()
		if !ok {
			select {
			case <-q.ctx.Done():
				return
			case <-q.wake:
				continue
			}
		}

		if q.ctx.Err() != nil {
			if j.discard != nil {
				j.discard()
			}
			return
		}

		resumed := make(chan struct{})
		var once sync.Once
		j.run(func() {
			once.Do(func() { close(resumed) })
		})

		select {
		case <-q.ctx.Done():
			return
		case <-resumed:
		}
	}
}
