package identity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// KeyIdentity holds the visitor token that correlates a browser
	// across sessions.
	KeyIdentity = "muse-user"

	// KeyCartSnapshot holds the most recent add-to-cart payload.
	KeyCartSnapshot = "muse-cart"

	IdentityTTL     = 30 * 24 * time.Hour
	CartSnapshotTTL = 7 * 24 * time.Hour
)

// Manager owns the persisted visitor identity and the cart snapshot.
// The token generator is injectable; by default it is a random UUID.
type Manager struct {
	store    Store
	generate func() string
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:    store,
		generate: uuid.NewString,
	}
}

func NewManagerWithGenerator(store Store, generate func() string) *Manager {
	return &Manager{
		store:    store,
		generate: generate,
	}
}

// Identity returns the persisted visitor token, or false when none
// exists (never persisted, or expired).
func (m *Manager) Identity() (string, bool) {
	return m.store.Get(KeyIdentity)
}

// EnsureIdentity returns the persisted visitor token, generating and
// persisting a fresh one when absent. Repeated calls inside the TTL
// window return the same token.
func (m *Manager) EnsureIdentity() string {
	if token, ok := m.store.Get(KeyIdentity); ok {
		return token
	}
	token := m.generate()
	m.store.Set(KeyIdentity, token, IdentityTTL)
	return token
}

// SaveCartSnapshot persists the given add-to-cart payload, replacing
// any previous snapshot. Payloads that cannot be encoded are dropped,
// matching the store's silent-failure contract.
func (m *Manager) SaveCartSnapshot(payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	m.store.Set(KeyCartSnapshot, string(data), CartSnapshotTTL)
}

// CartSnapshot returns the most recent add-to-cart payload, or false
// when none exists or the stored value no longer decodes.
func (m *Manager) CartSnapshot() (map[string]interface{}, bool) {
	raw, ok := m.store.Get(KeyCartSnapshot)
	if !ok {
		return nil, false
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// ClearCartSnapshot drops the persisted snapshot. Called after a
// purchase so the next session does not resurrect a checked-out cart.
func (m *Manager) ClearCartSnapshot() {
	m.store.Delete(KeyCartSnapshot)
}
