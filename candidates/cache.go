package candidates

import (
	"hash/fnv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// CacheKey is an opaque fixed-size cache key, replacing the teacher's
// MD5-of-fmt.Sprintf string key (strategies/util.go's GenerateCacheKey)
// with a cheaper, allocation-free hash.
type CacheKey uint64

// seedKey hashes a (seed, feedback) pair into a CacheKey. Two calls
// with the same seed contents and the same feedback always produce
// the same key, regardless of where the seed slice came from -
// resolving spec.md §9's Open Question by keying on the actual
// incremental filtering step rather than the full accumulated guess
// set.
func seedKey(seed []models.Word, fb models.Feedback) CacheKey {
	h := fnv.New64a()
	for _, w := range seed {
		h.Write(w[:])
	}
	h.Write([]byte{0xff}) // separator between seed and feedback payload
	h.Write(fb.Guess[:])
	for _, e := range fb.Entries {
		h.Write([]byte{e.Letter, byte(e.Position), byte(e.Tile)})
	}
	return CacheKey(h.Sum64())
}

// CachedFinder wraps incremental filtering with an LRU cache of
// results, keyed by the (seed, feedback) pair. It is the one
// constraint_cache strategy spec.md §9 asks an implementer to commit
// to: always incremental, always seeded from the running candidate
// set, never a from-scratch recomputation of the full guess history.
//
// Grounded on strategies/util.go's CachedFilterCandidateWords: same
// RWMutex-guarded LRU, same copy-on-read to keep cached slices from
// being mutated by callers.
type CachedFinder struct {
	cache *lru.Cache[CacheKey, []models.Word]
	mu    sync.RWMutex
}

// NewCachedFinder creates a cache holding at most maxEntries results.
func NewCachedFinder(maxEntries int) (*CachedFinder, error) {
	cache, err := lru.New[CacheKey, []models.Word](maxEntries)
	if err != nil {
		return nil, err
	}
	return &CachedFinder{cache: cache}, nil
}

// FindIncremental filters seed by the single additional feedback fb,
// returning (and caching) the narrowed candidate set.
func (c *CachedFinder) FindIncremental(fb models.Feedback, seed []models.Word) []models.Word {
	key := seedKey(seed, fb)

	c.mu.RLock()
	if cached, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		result := make([]models.Word, len(cached))
		copy(result, cached)
		return result
	}
	c.mu.RUnlock()

	result := Find([]models.Feedback{fb}, seed, nil)

	c.mu.Lock()
	c.cache.Add(key, result)
	c.mu.Unlock()

	return result
}

// Len returns the number of cached entries.
func (c *CachedFinder) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Purge clears the cache. Correctness of FindIncremental does not
// depend on the cache at all - purging only affects latency.
func (c *CachedFinder) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
