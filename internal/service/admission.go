package service

import (
	"context"
	"time"
)

// Defaults applied when the corresponding Config fields are unset.
const (
	defaultMaxQueueDepth = 16
	defaultMaxWait       = 30 * time.Second
)

// admission bounds how many requests may wait for the single in-flight
// generation slot. The engine itself serializes on its lock regardless;
// admission exists so the HTTP edge sheds load with a 429 instead of
// letting callers pile up behind a slow generation forever.
type admission struct {
	genCh   chan struct{} // size 1: single in-flight generation
	queueCh chan struct{} // buffered: queue slots
	maxWait time.Duration
}

func newAdmission(depth int, maxWait time.Duration) *admission {
	if depth <= 0 {
		depth = defaultMaxQueueDepth
	}
	if maxWait <= 0 {
		maxWait = defaultMaxWait
	}
	return &admission{
		genCh:   make(chan struct{}, 1),
		queueCh: make(chan struct{}, depth),
		maxWait: maxWait,
	}
}

// acquire reserves a queue slot and then the single in-flight slot.
// Returns a release func to be deferred.
func (a *admission) acquire(ctx context.Context) (func(), error) {
	// Try to reserve a queue slot with timeout.
	select {
	case a.queueCh <- struct{}{}:
		// reserved queue slot
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(a.maxWait):
		return func() {}, tooBusyError{}
	}

	// Wait to acquire the single in-flight slot.
	acquired := false
	defer func() {
		if !acquired {
			<-a.queueCh
		}
	}()
	select {
	case a.genCh <- struct{}{}:
		acquired = true
		return func() { <-a.genCh; <-a.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(a.maxWait):
		return func() {}, tooBusyError{}
	}
}

func (a *admission) queueLen() int { return len(a.queueCh) }
func (a *admission) inflight() int { return len(a.genCh) }
func (a *admission) depth() int    { return cap(a.queueCh) }
