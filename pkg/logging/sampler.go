package logging

import (
	"log/slog"
	"sync"
)

// ErrorSampler keeps repeated upstream failures from flooding the log.
// The first occurrence of a key is always let through, then every Nth.
type ErrorSampler struct {
	mu       sync.Mutex
	counts   map[string]int
	interval int
}

// NewErrorSampler returns a sampler that passes the 1st, Nth, 2Nth... occurrence.
// An interval below 1 logs every occurrence.
func NewErrorSampler(interval int) *ErrorSampler {
	if interval < 1 {
		interval = 1
	}
	return &ErrorSampler{
		counts:   make(map[string]int),
		interval: interval,
	}
}

// Sample records one occurrence of key and reports whether it should be logged
// together with the running count.
func (s *ErrorSampler) Sample(key string) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[key]++
	count := s.counts[key]
	return count == 1 || count%s.interval == 0, count
}

// Error logs msg at error level when the sampler lets key through.
func (s *ErrorSampler) Error(key, msg string, args ...any) {
	ok, count := s.Sample(key)
	if !ok {
		return
	}
	slog.Error(msg, append(args, "occurrences", count)...)
}

// Reset forgets key, so its next failure is logged again. Called once the
// upstream recovers.
func (s *ErrorSampler) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
}
