package programs

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte = 1024 * 1024

	activeProgramCacheKey = "program::active"
)

// CachedRepo keeps serialized programs in an in-process freecache. Every write
// through it evicts what it may have made stale. A read that raced with a
// write is returned but not cached.
type CachedRepo struct {
	store programStore
	cache *freecache.Cache
	ttl   int

	mu sync.Mutex
	// writes is bumped on every eviction
	writes uint64
}

func NewCachedRepo(store programStore, sizeMB int, ttl time.Duration) *CachedRepo {
	return &CachedRepo{
		store: store,
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   int(ttl.Seconds()),
	}
}

func programCacheKey(id string) []byte {
	return []byte("program::" + id)
}

func (c *CachedRepo) Get(ctx context.Context, id string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cachedrepo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := programCacheKey(id)
	if p, ok := c.fromCache(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return p, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	seen := c.writesSeen()
	p, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.toCacheIfUnchanged(key, p, seen)
	return p, nil
}

func (c *CachedRepo) GetActive(ctx context.Context) (*Program, error) {
	key := []byte(activeProgramCacheKey)
	if p, ok := c.fromCache(key); ok {
		return p, nil
	}

	seen := c.writesSeen()
	p, err := c.store.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	c.toCacheIfUnchanged(key, p, seen)
	return p, nil
}

func (c *CachedRepo) List(ctx context.Context) ([]Program, error) {
	return c.store.List(ctx)
}

func (c *CachedRepo) Add(ctx context.Context, p *Program) error {
	return c.store.Add(ctx, p)
}

func (c *CachedRepo) Update(ctx context.Context, p *Program) error {
	defer c.evict(p.ID)
	return c.store.Update(ctx, p)
}

func (c *CachedRepo) Delete(ctx context.Context, id string) error {
	defer c.evict(id)
	return c.store.Delete(ctx, id)
}

func (c *CachedRepo) SetActive(ctx context.Context, id string) error {
	// active flags of other programs change too
	defer func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.writes++
		c.cache.Clear()
	}()
	return c.store.SetActive(ctx, id)
}

func (c *CachedRepo) evict(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.cache.Del(programCacheKey(id))
	c.cache.Del([]byte(activeProgramCacheKey))
}

func (c *CachedRepo) writesSeen() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// toCacheIfUnchanged stores p unless a write was evicted since seen was taken,
// so a document read before that write cannot outlive it in the cache.
func (c *CachedRepo) toCacheIfUnchanged(key []byte, p *Program, seen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writes != seen {
		log.Debugf("program %s changed while being read, not cached", p.ID)
		return
	}
	c.toCache(key, p)
}

func (c *CachedRepo) fromCache(key []byte) (*Program, bool) {
	cached, err := c.cache.Get(key)
	if err != nil {
		return nil, false
	}
	var p Program
	if err := json.Unmarshal(cached, &p); err != nil {
		log.Errorf("unmarshal cached program [%s]: %s", key, err)
		c.cache.Del(key)
		return nil, false
	}
	return &p, true
}

func (c *CachedRepo) toCache(key []byte, p *Program) {
	programJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal program %s for cache: %s", p.ID, err)
		return
	}
	if err := c.cache.Set(key, programJson, c.ttl); err != nil {
		log.Debugf("program %s not cached: %s", p.ID, err)
	}
}
