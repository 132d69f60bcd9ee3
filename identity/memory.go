package identity

import (
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is the default Store: a per-process map with per-key expiry.
// The clock is injectable so expiry is testable without sleeping.
type Memory struct {
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ Store = &Memory{}

func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: map[string]memoryEntry{},
		now:     now,
	}
}

func (m *Memory) Get(key string) (string, bool) {
	entry, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return "", false
	}
	return entry.value, true
}

func (m *Memory) Set(key string, value string, ttl time.Duration) {
	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *Memory) Delete(key string) {
	delete(m.entries, key)
}
