package models

import "sync/atomic"

// Sequence hands out strictly increasing numbers. The zero value starts at 1.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence whose first value is start
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start - 1)
	return s
}

// Next returns the next value. Safe for concurrent use.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
