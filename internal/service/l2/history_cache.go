package l2_service

import (
	"sync"
	"time"

	"bourse/internal/domain"
	"bourse/internal/util"

	"github.com/google/uuid"
)

type historyCacheKey struct {
	portfolioID     uuid.UUID
	lastTransaction int64
	numTransactions int
	today           string
}

func newHistoryCacheKey(portfolioID uuid.UUID, transactions []domain.Transaction, today time.Time) historyCacheKey {
	key := historyCacheKey{
		portfolioID:     portfolioID,
		numTransactions: len(transactions),
		today:           util.FormatDate(today),
	}
	if len(transactions) > 0 {
		key.lastTransaction = transactions[len(transactions)-1].Timestamp.UnixNano()
	}
	return key
}

// historyCache holds the latest computed series per portfolio. A new
// transaction or a new day changes the key, so stale entries are never
// served.
type historyCache struct {
	entries   map[uuid.UUID]historyCacheEntry
	ReadMutex *sync.RWMutex
}

type historyCacheEntry struct {
	key    historyCacheKey
	points []domain.ValuationPoint
}

func newHistoryCache() *historyCache {
	return &historyCache{
		entries:   map[uuid.UUID]historyCacheEntry{},
		ReadMutex: &sync.RWMutex{},
	}
}

func (c *historyCache) get(key historyCacheKey) ([]domain.ValuationPoint, bool) {
	c.ReadMutex.RLock()
	defer c.ReadMutex.RUnlock()

	entry, ok := c.entries[key.portfolioID]
	if !ok || entry.key != key {
		return nil, false
	}
	return copyPoints(entry.points), true
}

func (c *historyCache) set(key historyCacheKey, points []domain.ValuationPoint) {
	c.ReadMutex.Lock()
	defer c.ReadMutex.Unlock()

	c.entries[key.portfolioID] = historyCacheEntry{
		key:    key,
		points: copyPoints(points),
	}
}

func copyPoints(points []domain.ValuationPoint) []domain.ValuationPoint {
	out := make([]domain.ValuationPoint, len(points))
	copy(out, points)
	return out
}
