package session

import (
	"strings"
	"sync"
)

// FallbackCompany keys version counters and artifact names when the company
// answer is blank.
const FallbackCompany = "empresa"

// VersionStore tracks per-company version counters for the lifetime of the
// process. Counters start at zero; nothing is persisted.
type VersionStore struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewVersionStore() *VersionStore {
	return &VersionStore{counts: map[string]int{}}
}

// NormalizeCompany derives the counter key from a company name: trimmed,
// lowercased, whitespace runs collapsed to a single underscore. A blank
// name falls back to FallbackCompany, so anonymous deals share one counter.
func NormalizeCompany(name string) string {
	key := strings.Join(strings.Fields(strings.ToLower(name)), "_")
	if key == "" {
		return FallbackCompany
	}
	return key
}

// Peek returns the version the next Commit would hand out, without
// consuming it. Repeated calls return the same number.
func (s *VersionStore) Peek(company string) int {
	key := NormalizeCompany(company)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[key] + 1
}

// Commit consumes and returns the next version for the company.
func (s *VersionStore) Commit(company string) int {
	key := NormalizeCompany(company)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key]
}
