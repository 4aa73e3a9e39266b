// Package worker runs fire-and-wait batches on a fixed pool of
// goroutines. The cascade delete and reorder-save paths fan their
// per-record store requests through here.
package worker

import "sync"

type task func()

type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) { p.jobs <- f }

// Batch submits fns concurrently and waits for all to settle, returning
// one error per fn (nil on success) in submission order. There is no
// rollback: callers own the partial-failure contract.
func (p *Pool) Batch(fns []func() error) []error {
	errs := make([]error, len(fns))
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for i, fn := range fns {
		i, fn := i, fn
		p.Submit(func() {
			defer wg.Done()
			errs[i] = fn()
		})
	}
	wg.Wait()
	return errs
}

func (p *Pool) Stop() { close(p.jobs); p.wg.Wait() }
