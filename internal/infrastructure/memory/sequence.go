package memory

import "sync/atomic"

// Sequence hands out strictly increasing ids starting at 1. Ids are never
// reused, even after the record that held one is deleted.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Last returns the most recently issued id, or 0 if none was issued.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}
