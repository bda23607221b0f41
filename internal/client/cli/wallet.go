package cli

import "sync"

// wallet holds the address assets are minted to, exactly as given.
// Ownership of the address is not verified.
type wallet struct {
	mu      sync.RWMutex
	address string
}

func (w *wallet) Connect(address string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.address = address
}

func (w *wallet) OwnerAddress() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.address
}

// pathPicker remembers the path typed for the current selection.
type pathPicker struct {
	path string
}

func (p *pathPicker) Reset() { p.path = "" }
