package tiledriver

import "sync"

// progressState is the single piece of read-write shared state spec §4.7
// allows: a completed-row counter, a stop flag, and the mutex/condition
// variable guarding both. Workers hold no other shared mutable state
// (their walk-hints are private), per spec §5's shared-resource policy.
type progressState struct {
	mu      sync.Mutex
	cond    *sync.Cond
	counter int
	stop    bool
	failed  error
}

func newProgressState() *progressState {
	ps := &progressState{}
	ps.cond = sync.NewCond(&ps.mu)
	return ps
}

// rowDone records one more completed row and wakes the main thread.
func (ps *progressState) rowDone() {
	ps.mu.Lock()
	ps.counter++
	ps.cond.Broadcast()
	ps.mu.Unlock()
}

func (ps *progressState) shouldStop() bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.stop
}

// setStop raises stop and records the first non-nil error as the reason
// Process should fail with (an evaluator failure), distinct from a plain
// user-requested cancellation where err is nil.
func (ps *progressState) setStop(err error) {
	ps.mu.Lock()
	ps.stop = true
	if err != nil && ps.failed == nil {
		ps.failed = err
	}
	ps.cond.Broadcast()
	ps.mu.Unlock()
}
