package utils

import "sync"

// Inflight counts running background tasks. Add may be called concurrently
// with Wait; a Wait that observes zero tasks returns immediately.
// The zero value is ready to use.
type Inflight struct {
	mu    sync.Mutex
	count int
	idle  chan struct{}
}

func (f *Inflight) Add() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.count == 0 {
		f.idle = make(chan struct{})
	}

	f.count++
}

func (f *Inflight) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.count == 0 {
		panic("utils: Inflight.Done without Add")
	}

	f.count--

	if f.count == 0 {
		close(f.idle)
	}
}

// Wait blocks until the tasks running at the time of the call, and any
// started before they finish, are done.
func (f *Inflight) Wait() {
	f.mu.Lock()

	if f.count == 0 {
		f.mu.Unlock()

		return
	}

	idle := f.idle
	f.mu.Unlock()

	<-idle
}
