package fetch

import "sync/atomic"

// Sequencer orders overlapping in-flight requests. Each request takes a
// monotonically increasing token before it starts; when its response
// arrives, Accept reports whether the result is still the freshest one.
// A response issued before a newer request started is dropped instead of
// overwriting fresher data.
type Sequencer struct {
	issued   atomic.Uint64
	accepted atomic.Uint64
}

// Next issues a token for a request that is about to start. Tokens are
// strictly increasing; later requests always hold larger tokens.
func (s *Sequencer) Next() uint64 {
	return s.issued.Add(1)
}

// Accept reports whether a response holding token may be applied. It
// returns true only when token is newer than every previously accepted
// response AND no newer request has been issued since. Safe for
// concurrent use; at most one of a set of racing responses wins.
func (s *Sequencer) Accept(token uint64) bool {
	if token != s.issued.Load() {
		return false
	}
	for {
		current := s.accepted.Load()
		if token <= current {
			return false
		}
		if s.accepted.CompareAndSwap(current, token) {
			return true
		}
	}
}
