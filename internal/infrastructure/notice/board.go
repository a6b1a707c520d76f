package notice

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ton_portfolio/internal/domain/entity"
)

const currentKey = "current"

// Board holds the latest acknowledgement until its TTL runs out.
type Board struct {
	store *cache.Cache
	ttl   time.Duration
}

// NewBoard creates a Board whose notices expire after ttl.
func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Board{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Post replaces the current notice.
func (b *Board) Post(n entity.Notice) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	b.store.Set(currentKey, n, b.ttl)
}

// Current returns the notice if it has not expired yet.
func (b *Board) Current() (entity.Notice, bool) {
	v, ok := b.store.Get(currentKey)
	if !ok {
		return entity.Notice{}, false
	}
	n, ok := v.(entity.Notice)
	return n, ok
}

// Clear drops the current notice.
func (b *Board) Clear() {
	b.store.Delete(currentKey)
}
