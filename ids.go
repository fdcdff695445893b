// ids.go

package main

import (
	"sync/atomic"
	"time"
)

// IDSequence hands out strictly increasing ids seeded from the wall clock in
// milliseconds, so ids still read like timestamps but two requests in the
// same millisecond never collide.
type IDSequence struct {
	last atomic.Int64
	now  func() time.Time
}

func NewIDSequence() *IDSequence {
	return &IDSequence{now: time.Now}
}

func (s *IDSequence) Next() int64 {
	for {
		last := s.last.Load()
		next := s.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
