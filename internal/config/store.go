package config

import "sync"

// Change describes a configuration update delivered to observers.
type Change struct {
	// Old and New are the configurations before and after the update.
	Old Config
	New Config
}

// DelimitersChanged reports whether the delimiter pair differs between
// Old and New. Observers holding offset-based tag state must discard
// it when this is true.
func (c Change) DelimitersChanged() bool {
	return c.Old.Tag.Open != c.New.Tag.Open || c.Old.Tag.Close != c.New.Tag.Close
}

// Observer is called after a configuration update.
type Observer func(change Change)

// Store holds the live configuration and notifies observers of
// updates. Delimiter updates are validated before they are applied.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	observers []Observer
}

// NewStore creates a store with the given initial configuration.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Current returns the live configuration.
func (s *Store) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Subscribe registers an observer for configuration updates.
func (s *Store) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// Update validates and applies a full configuration, notifying
// observers of the change.
func (s *Store) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	change := Change{Old: s.cfg, New: cfg}
	s.cfg = cfg
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, obs := range observers {
		obs(change)
	}
	return nil
}

// SetDelimiters updates the delimiter pair.
// The open and close delimiters are independently re-settable; each
// update validates the resulting pair as a whole.
func (s *Store) SetDelimiters(open, close string) error {
	cfg := s.Current()
	cfg.Tag.Open = open
	cfg.Tag.Close = close
	return s.Update(cfg)
}

// SetWrap updates the wrap-around flag.
func (s *Store) SetWrap(wrap bool) error {
	cfg := s.Current()
	cfg.Tag.Wrap = wrap
	return s.Update(cfg)
}
