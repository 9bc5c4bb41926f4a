package worker

import "sync"

// Task represents a unit of background work, e.g. cache invalidation
// after a write request has already been answered.
type Task func()

// Pool runs submitted tasks on a fixed number of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task, 16)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

// Stop drains queued tasks and waits for all workers to exit.
func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
