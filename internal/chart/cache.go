package chart

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/alexisbeaulieu97/chartkit/internal/logger"
)

// DefaultCacheCapacity bounds a cache created with a non-positive capacity.
const DefaultCacheCapacity = 64

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Cache memoizes built chart models keyed by a digest of their input content.
// It is safe for concurrent use. Every lookup returns a fresh copy, so callers
// may modify the models they receive.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	order    []uint64
	entries  map[uint64]any
	hits     uint64
	misses   uint64
	log      *logger.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheLogger attaches a logger that records evictions at debug level.
func WithCacheLogger(log *logger.Logger) CacheOption {
	return func(c *Cache) {
		c.log = log
	}
}

// NewCache creates a cache holding at most capacity models.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{
		capacity: capacity,
		entries:  make(map[uint64]any, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BarChart returns the cached model for props, building it on a miss.
func (c *Cache) BarChart(props BarChartProps) BarChartModel {
	key := BarChartKey(props)
	if cached, ok := c.lookup(key); ok {
		if model, ok := cached.(BarChartModel); ok {
			return model.clone()
		}
	}
	model := BuildBarChart(props)
	c.store(key, model)
	return model.clone()
}

// PieChart returns the cached model for props, building it on a miss.
func (c *Cache) PieChart(props PieChartProps) PieChartModel {
	key := PieChartKey(props)
	if cached, ok := c.lookup(key); ok {
		if model, ok := cached.(PieChartModel); ok {
			return model.clone()
		}
	}
	model := BuildPieChart(props)
	c.store(key, model)
	return model.clone()
}

// Stats returns a snapshot of hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

// Reset drops every entry and zeroes the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]any, c.capacity)
	c.order = nil
	c.hits, c.misses = 0, 0
}

func (c *Cache) lookup(key uint64) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *Cache) store(key uint64, model any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; exists {
		c.entries[key] = model
		return
	}
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.log.Debug(fmt.Sprintf("evicted chart model %016x", oldest))
	}
	c.entries[key] = model
	c.order = append(c.order, key)
}

// BarChartKey digests the content of props. Equal content yields equal keys.
func BarChartKey(props BarChartProps) uint64 {
	d := newDigest("bar")
	d.str(props.AriaLabel)
	d.str(props.XAxisLabel)
	d.str(props.YAxisLabel)
	d.str(props.FormatterKey)
	d.integer(len(props.Groups))
	for _, g := range props.Groups {
		d.str(g.ID)
		d.str(g.Label)
		d.integer(int(g.Variant))
		d.integer(g.TintIndex)
	}
	d.integer(len(props.Data))
	for _, p := range props.Data {
		if !present(p) {
			d.integer(0)
			continue
		}
		d.integer(int(p.Kind()))
		d.str(p.PointLabel())
		d.str(p.PointDetail())
		d.num(p.pointValue())
		groups := p.pointGroups()
		d.integer(len(groups))
		for _, g := range groups {
			d.str(g.ID)
			d.num(g.Value)
			d.str(g.Detail)
		}
	}
	return d.sum()
}

// PieChartKey digests the content of props. Equal content yields equal keys.
func PieChartKey(props PieChartProps) uint64 {
	d := newDigest("pie")
	d.str(props.AriaLabel)
	d.str(props.FormatterKey)
	if props.CenterLabel != nil {
		d.integer(1)
		d.str(props.CenterLabel.Value)
		d.str(props.CenterLabel.Description)
	} else {
		d.integer(0)
	}
	d.integer(len(props.Data))
	for _, s := range props.Data {
		d.str(s.ID)
		d.str(s.Label)
		d.num(s.Value)
		d.str(s.Detail)
		d.integer(int(s.Variant))
	}
	return d.sum()
}

type digest struct {
	h   *xxhash.Digest
	buf [8]byte
}

func newDigest(kind string) *digest {
	d := &digest{h: xxhash.New()}
	d.str(kind)
	return d
}

// str writes a length-prefixed string so adjacent fields cannot collide.
func (d *digest) str(s string) {
	d.integer(len(s))
	_, _ = d.h.WriteString(s)
}

func (d *digest) integer(n int) {
	binary.LittleEndian.PutUint64(d.buf[:], uint64(n))
	_, _ = d.h.Write(d.buf[:])
}

func (d *digest) num(f float64) {
	binary.LittleEndian.PutUint64(d.buf[:], math.Float64bits(f))
	_, _ = d.h.Write(d.buf[:])
}

func (d *digest) sum() uint64 {
	return d.h.Sum64()
}
