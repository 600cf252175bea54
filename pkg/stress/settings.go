package stress

import (
	"sync"
)

// Settings is the typed configuration store stressors resolve their
// options from. The CLI fills it before workers start; stressors only
// read it, but the lock keeps late readers safe anyway.
type Settings struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

func NewSettings() *Settings {
	return &Settings{values: make(map[string]interface{})}
}

func (s *Settings) SetString(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

func (s *Settings) GetString(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name].(string)
	return value, ok
}

func (s *Settings) SetUint64(name string, value uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

func (s *Settings) GetUint64(name string) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name].(uint64)
	return value, ok
}
