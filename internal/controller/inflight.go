package controller

import "sync"

// inflight counts running remote calls. Unlike sync.WaitGroup it allows
// add to race with wait while the count is zero; wait then returns once
// the count next drops to zero.
type inflight struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

func (f *inflight) add() {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
}

func (f *inflight) done() {
	f.mu.Lock()
	f.count--
	if f.count == 0 && f.cond != nil {
		f.cond.Broadcast()
	}
	f.mu.Unlock()
}

func (f *inflight) wait() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cond == nil {
		f.cond = sync.NewCond(&f.mu)
	}
	for f.count > 0 {
		f.cond.Wait()
	}
}
