package xresult

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// entry 是缓存内的条目，创建后不可变。
type entry[T any] struct {
	value T
	at    time.Time
}

// Stats 缓存累计计数，只增不减。
type Stats struct {
	Added           uint64 `json:"added"`
	CapacityEvicted uint64 `json:"capacity_evicted"`
	TTLEvicted      uint64 `json:"ttl_evicted"`
	Cleared         uint64 `json:"cleared"`
}

// Cache 是有界、带可选 TTL 的最近结果缓存。
// 必须通过 [New] 创建，零值不可用。所有方法都是并发安全的。
//
// 设计决策: 底层使用 simplelru，以单调递增的插入序号作为键，且从不调用 Get，
// 因此 LRU 的"最久未使用"恒等于"最早插入"，容量淘汰即严格 FIFO。
type Cache[T any] struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[uint64, entry[T]]
	seq      uint64
	capacity int
	ttl      time.Duration
	clock    func() time.Time
	recorder Recorder

	added           atomic.Uint64
	capacityEvicted atomic.Uint64
	ttlEvicted      atomic.Uint64
	cleared         atomic.Uint64
}

// New 创建新的结果缓存。
// 配置无效时返回的错误同时匹配 ErrInvalidConfig 与具体原因
// （ErrInvalidCapacity、ErrCapacityExceedsMax、ErrInvalidTTL）。
func New[T any](cfg Config, opts ...Option) (*Cache[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		clock:    time.Now,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	lru, err := simplelru.NewLRU[uint64, entry[T]](cfg.Capacity, nil)
	if err != nil {
		return nil, configError(err)
	}

	return &Cache[T]{
		lru:      lru,
		capacity: cfg.Capacity,
		ttl:      cfg.TTL,
		clock:    o.clock,
		recorder: o.recorder,
	}, nil
}

func configError(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, cause)
}

// Add 以当前时间追加一条结果。
// 缓存已满时先淘汰最旧的一条，淘汰不会通知调用方。
func (c *Cache[T]) Add(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	evicted := c.lru.Add(c.seq, entry[T]{value: value, at: c.clock()})
	c.added.Add(1)
	c.recorder.RecordAdd()
	if evicted {
		c.capacityEvicted.Add(1)
		c.recorder.RecordEviction(ReasonCapacity, 1)
	}
}

// All 裁剪过期条目后，返回全部值的快照（旧 → 新）。
// 缓存为空时返回非 nil 的空切片。
func (c *Cache[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trimLocked()
	return c.snapshotLocked(c.lru.Len())
}

// Latest 裁剪过期条目后，返回最近 n 条值的快照（旧 → 新）。
//
// n 大于当前条目数时返回全部；n <= 0 返回空切片。
func (c *Cache[T]) Latest(n int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trimLocked()
	return c.snapshotLocked(n)
}

// PeekOldest 返回最旧的值，不裁剪过期条目，也不修改任何状态。
// 缓存为空时返回零值和 false。
func (c *Cache[T]) PeekOldest() (value T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, e, ok := c.lru.GetOldest()
	if !ok {
		return value, false
	}
	return e.value, true
}

// Clear 移除全部条目。对空缓存调用是无操作。
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.lru.Len()
	if n == 0 {
		return
	}
	c.lru.Purge()
	c.cleared.Add(uint64(n))
	c.recorder.RecordEviction(ReasonClear, n)
}

// Len 返回当前持有的条目数。
//
// 注意：不触发过期裁剪，返回值可能包含已过期但尚未被读取裁剪的条目。
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Sweep 裁剪过期前缀，返回移除的条目数。TTL 为 0 时返回 0。
//
// All/Latest 已在读取前执行同样的裁剪；Sweep 供需要主动回收内存的调用方
// 周期性调用（例如配合 xrun.Ticker），缓存自身从不隐式调用它。
func (c *Cache[T]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trimLocked()
}

// Capacity 返回构造时的容量。
func (c *Cache[T]) Capacity() int {
	return c.capacity
}

// TTL 返回构造时的 TTL，0 表示不过期。
func (c *Cache[T]) TTL() time.Duration {
	return c.ttl
}

// Stats 返回累计计数。不获取缓存锁，各字段分别原子读取。
func (c *Cache[T]) Stats() Stats {
	return Stats{
		Added:           c.added.Load(),
		CapacityEvicted: c.capacityEvicted.Load(),
		TTLEvicted:      c.ttlEvicted.Load(),
		Cleared:         c.cleared.Load(),
	}
}

// trimLocked 从队首移除超过 TTL 的条目，调用方必须持有锁。
// 条目按时间有序，遇到第一条未过期的条目即停止。
func (c *Cache[T]) trimLocked() int {
	if c.ttl <= 0 {
		return 0
	}

	now := c.clock()
	removed := 0
	for {
		_, e, ok := c.lru.GetOldest()
		if !ok || now.Sub(e.at) <= c.ttl {
			break
		}
		c.lru.RemoveOldest()
		removed++
	}

	if removed > 0 {
		c.ttlEvicted.Add(uint64(removed))
		c.recorder.RecordEviction(ReasonTTL, removed)
	}
	return removed
}

// snapshotLocked 返回最近 n 条值的独立切片，调用方必须持有锁。
func (c *Cache[T]) snapshotLocked(n int) []T {
	size := c.lru.Len()
	if n <= 0 || size == 0 {
		c.recorder.RecordRead(0)
		return []T{}
	}

	// simplelru.Values 按旧 → 新返回条目
	entries := c.lru.Values()
	if n < size {
		entries = entries[size-n:]
	}
	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	c.recorder.RecordRead(len(values))
	return values
}
