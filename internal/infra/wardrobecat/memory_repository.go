package wardrobecat

import (
	"context"
	"sync"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// MemoryRepository serves a fixed catalog from process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []wardrobe.Item
}

// NewMemoryRepository constructs a repository over the given items.
func NewMemoryRepository(items []wardrobe.Item) *MemoryRepository {
	copied := make([]wardrobe.Item, len(items))
	copy(copied, items)
	return &MemoryRepository{items: copied}
}

// List returns a copy of the catalog so callers can filter freely.
func (r *MemoryRepository) List(_ context.Context) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wardrobe.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Replace swaps the whole catalog, used when reloading from disk.
func (r *MemoryRepository) Replace(items []wardrobe.Item) {
	copied := make([]wardrobe.Item, len(items))
	copy(copied, items)
	r.mu.Lock()
	r.items = copied
	r.mu.Unlock()
}

var _ wardrobe.Repository = (*MemoryRepository)(nil)
