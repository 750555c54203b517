package imagecache

import "sync"

// Ephemeral is the in-memory paste/drop buffer behind cache:// references.
// Entries live only until the memo is persisted, at which point the
// application saves them through a Store and rewrites the reference to
// image://.
type Ephemeral struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewEphemeral creates an empty paste/drop buffer.
func NewEphemeral() *Ephemeral {
	return &Ephemeral{data: make(map[string][]byte)}
}

// Put stores pasted image bytes under a key.
func (e *Ephemeral) Put(key string, data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data[key] = data
}

// Get returns the bytes stored under a key.
func (e *Ephemeral) Get(key string) ([]byte, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	data, found := e.data[key]
	return data, found
}

// Remove drops a key, typically after its bytes were persisted.
func (e *Ephemeral) Remove(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.data, key)
}

// Len returns the number of buffered entries.
func (e *Ephemeral) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.data)
}
