package pipeline

import "sync/atomic"

// Counters aggregates success and failure counts across concurrently
// executing workers. Exactly one increment happens per finished job,
// plus one failure per sheet that never produced jobs.
type Counters struct {
	succeeded atomic.Int64
	failed    atomic.Int64
}

func (c *Counters) Success() { c.succeeded.Add(1) }

func (c *Counters) Failure() { c.failed.Add(1) }

// Snapshot returns the current totals.
func (c *Counters) Snapshot() (succeeded, failed int64) {
	return c.succeeded.Load(), c.failed.Load()
}
