// Package session holds the mutable capture state for one deal: the flat
// answer record, the product selection set, image attachments, and the
// per-company version counters. Answers are never purged when a product or
// predicate toggles off; projection decides what shows.
package session

import (
	"strings"
	"sync"

	"github.com/goliatone/go-dealsheet/pkg/catalog"
	"github.com/goliatone/go-dealsheet/pkg/images"
	"github.com/goliatone/go-dealsheet/pkg/visibility"
)

// Session is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	answers  map[string]any
	selected map[string]bool
	images   map[string]images.Payload
	versions *VersionStore
}

// Option configures a Session.
type Option func(*Session)

// WithVersionStore shares a version store across sessions, e.g. when one
// process captures several deals for the same companies.
func WithVersionStore(store *VersionStore) Option {
	return func(s *Session) {
		if store != nil {
			s.versions = store
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		answers:  map[string]any{},
		selected: map[string]bool{},
		images:   map[string]images.Payload{},
		versions: NewVersionStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleProduct flips a product in or out of the selection set and returns
// the new state. Answers captured under the product are kept either way.
func (s *Session) ToggleProduct(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[name] = !s.selected[name]
	return s.selected[name]
}

// SelectProduct sets a product's selection state explicitly.
func (s *Session) SelectProduct(name string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[name] = on
}

// Selected reports whether a product is in the selection set.
func (s *Session) Selected(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[name]
}

// SetField stores an answer. Values are strings for text and choice fields
// and bools for flags; empty means unanswered.
func (s *Session) SetField(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[key] = value
}

// Field returns a stored answer.
func (s *Session) Field(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.answers[key]
	return v, ok
}

// SetImage attaches a payload to a slot. A zero payload clears the slot.
func (s *Session) SetImage(slot string, payload images.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payload.IsZero() {
		delete(s.images, slot)
		return
	}
	s.images[slot] = payload
}

// Image returns the payload attached to a slot, if any.
func (s *Session) Image(slot string) (images.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.images[slot]
	return p, ok
}

// Company returns the trimmed company-name answer, empty when unset.
func (s *Session) Company() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.answers["empresa"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// PeekVersion previews the version the next generation would produce for
// the current company, without consuming it.
func (s *Session) PeekVersion() int {
	return s.versions.Peek(s.Company())
}

// CommitVersion consumes and returns the next version for the current
// company. Call it only after the artifact surface is confirmed.
func (s *Session) CommitVersion() int {
	return s.versions.Commit(s.Company())
}

// Versions exposes the underlying store.
func (s *Session) Versions() *VersionStore { return s.versions }

// Snapshot is an immutable copy of the capture state, the input to the
// document builder.
type Snapshot struct {
	Answers  map[string]any
	Selected map[string]bool
	Images   map[string]images.Payload
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Answers:  make(map[string]any, len(s.answers)),
		Selected: make(map[string]bool, len(s.selected)),
		Images:   make(map[string]images.Payload, len(s.images)),
	}
	for k, v := range s.answers {
		snap.Answers[k] = v
	}
	for k, v := range s.selected {
		snap.Selected[k] = v
	}
	for k, v := range s.images {
		snap.Images[k] = v
	}
	return snap
}

// Company returns the trimmed company-name answer from the snapshot.
func (snap Snapshot) Company() string {
	if v, ok := snap.Answers["empresa"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// String returns the answer under key as a trimmed string. Flags and
// missing keys come back empty.
func (snap Snapshot) String(key string) string {
	if v, ok := snap.Answers[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Flag returns the answer under key as a bool.
func (snap Snapshot) Flag(key string) bool {
	v, ok := snap.Answers[key].(bool)
	return ok && v
}

// SelectedProducts returns the active subset of the catalog enumeration,
// in enumeration order.
func (snap Snapshot) SelectedProducts() []string {
	var out []string
	for _, name := range catalog.ProductNames() {
		if snap.Selected[name] {
			out = append(out, name)
		}
	}
	return out
}

// VisibilityContext adapts the snapshot for rule evaluation.
func (snap Snapshot) VisibilityContext() visibility.Context {
	return visibility.Context{Answers: snap.Answers, Selected: snap.Selected}
}
