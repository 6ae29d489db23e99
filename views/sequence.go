package views

import "sync"

// sequence orders overlapping requests against one view. Each request takes a
// number from begin and may only apply its result if commit accepts it, which
// happens when no newer request has applied first. Views commit while holding
// their own lock so the commit and the state change land together.
type sequence struct {
	lock    sync.Mutex
	issued  uint64
	applied uint64
}

func (s *sequence) begin() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.issued++
	return s.issued
}

func (s *sequence) commit(n uint64) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if n <= s.applied {
		return false
	}
	s.applied = n
	return true
}
