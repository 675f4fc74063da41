package resume

import "sync/atomic"

// Store holds the current in-process resume. There is no persistence: admin
// uploads replace the value for the lifetime of the process only.
//
// Reads vastly outnumber writes (every chat pulls the resume once, updates
// happen only on admin import), so the value is swapped atomically and readers
// keep whatever snapshot they already obtained.
type Store struct {
	current atomic.Pointer[Resume]
}

// NewStore creates a store seeded with the given resume.
func NewStore(seed Resume) *Store {
	s := &Store{}
	s.current.Store(&seed)
	return s
}

// Current returns the resume snapshot in effect right now.
func (s *Store) Current() Resume {
	return *s.current.Load()
}

// Update validates and atomically replaces the current resume.
func (s *Store) Update(r Resume) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.current.Store(&r)
	return nil
}
