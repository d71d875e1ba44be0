package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/Gunvolt24/buzzline/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу MessageCache.
var _ ports.MessageCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int64
	msg       *domain.ProcessedMessage
	expiresAt time.Time
}

// LRUCacheTTL — кэш обработанных сообщений: вытеснение LRU + скользящий TTL.
// Ключ — ID записи, назначенный базой. ttl <= 0 отключает истечение.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int64]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

// Get — запись по ID. Попадание освежает позицию в LRU и TTL.
// Возвращается копия: дальнейшие изменения у вызывающего кэш не трогают.
func (c *LRUCacheTTL) Get(_ context.Context, id int64) (*domain.ProcessedMessage, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneMessage(ent.msg), true
}

// Set — сохранить/обновить запись. Записи без ID молча пропускаются:
// кэшировать можно только то, что уже получило ключ в базе.
func (c *LRUCacheTTL) Set(_ context.Context, msg *domain.ProcessedMessage) error {
	if msg == nil || msg.ID == 0 {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[msg.ID]; ok {
		ent := elem.Value.(*entry)
		ent.msg = cloneMessage(msg)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        msg.ID,
		msg:       cloneMessage(msg),
		expiresAt: c.expiryFrom(now),
	})
	c.index[msg.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — массовая загрузка (прогрев на старте). Уважает отмену контекста.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, msgs []*domain.ProcessedMessage) error {
	for _, msg := range msgs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Set(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число записей в кэше.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}
