// File: ring/options.go
// Package ring defines functional options for Buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"runtime"
	"time"
)

type config struct {
	pageSize int
	wait     WaitStrategy
}

func defaultConfig() config {
	return config{
		pageSize: pageSize(),
		wait:     WaitSpin,
	}
}

// PageSize reports the platform page size used by default for capacity
// validation. Valid capacities are positive multiples of this value.
func PageSize() int {
	return pageSize()
}

// Option customizes Buffer construction.
type Option func(*config)

// WithPageSize overrides the probed platform page size used to validate
// capacity. The value must be positive; non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithWaitStrategy selects what a deadline-bounded operation does between
// polling iterations. Default is WaitSpin.
func WithWaitStrategy(ws WaitStrategy) Option {
	return func(c *config) {
		if ws != nil {
			c.wait = ws
		}
	}
}

// WaitStrategy controls the gap between polling iterations of the
// deadline-bounded operations. It never changes check ordering, only what
// the goroutine does after an unsatisfied iteration.
type WaitStrategy interface {
	pause()
}

var (
	// WaitSpin re-checks immediately with no yield or sleep. The calling
	// goroutine occupies its processor for the entire wait.
	WaitSpin WaitStrategy = spinWait{}

	// WaitYield calls runtime.Gosched between iterations, letting other
	// goroutines run while keeping sub-microsecond reaction time.
	WaitYield WaitStrategy = yieldWait{}
)

// WaitSleep parks the goroutine for d between iterations. Reaction time
// degrades to roughly d; CPU use drops to near zero.
func WaitSleep(d time.Duration) WaitStrategy {
	return sleepWait{d: d}
}

type spinWait struct{}

func (spinWait) pause() {}

type yieldWait struct{}

func (yieldWait) pause() { runtime.Gosched() }

type sleepWait struct {
	d time.Duration
}

func (w sleepWait) pause() { time.Sleep(w.d) }
