package tmdb

import (
	"context"
	"log"
	"sync"

	"reelstream/models"
)

// genreCache holds the two process-wide genre id -> name mappings. Each map
// populates at most once while empty and is never mutated afterwards; a
// failed fetch leaves it empty so a later call can try again. Concurrent
// cold-cache callers may issue redundant upstream fetches — the result is
// idempotent, so no coalescing is done.
type genreCache struct {
	mu     sync.RWMutex
	movies map[int64]string
	tv     map[int64]string
}

func newGenreCache() *genreCache {
	return &genreCache{
		movies: make(map[int64]string),
		tv:     make(map[int64]string),
	}
}

// ensureLoaded populates whichever of the two mappings is still empty.
// Errors are logged and swallowed: normalization proceeds with an empty
// cache and genre ids simply resolve to nothing.
func (g *genreCache) ensureLoaded(ctx context.Context, c *client) {
	if !c.isConfigured() {
		return
	}
	if g.isEmpty(models.MediaTypeMovie) {
		if genres, err := c.genreList(ctx, string(models.MediaTypeMovie)); err != nil {
			log.Printf("[tmdb] failed to fetch movie genres: %v", err)
		} else {
			g.populate(models.MediaTypeMovie, genres)
		}
	}
	if g.isEmpty(models.MediaTypeTV) {
		if genres, err := c.genreList(ctx, string(models.MediaTypeTV)); err != nil {
			log.Printf("[tmdb] failed to fetch TV genres: %v", err)
		} else {
			g.populate(models.MediaTypeTV, genres)
		}
	}
}

func (g *genreCache) isEmpty(mediaType models.MediaType) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.mapFor(mediaType)) == 0
}

// populate fills a mapping from a fetched genre list. A map that already has
// entries is left untouched so the first successful population wins.
func (g *genreCache) populate(mediaType models.MediaType, genres []genre) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m := g.mapFor(mediaType)
	if len(m) > 0 {
		return
	}
	for _, entry := range genres {
		m[entry.ID] = entry.Name
	}
}

// name resolves one genre id; ok is false for ids with no cached name.
func (g *genreCache) name(mediaType models.MediaType, id int64) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	name, ok := g.mapFor(mediaType)[id]
	return name, ok
}

// snapshot returns a copy of one mapping for read-only callers.
func (g *genreCache) snapshot(mediaType models.MediaType) map[int64]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.mapFor(mediaType)
	out := make(map[int64]string, len(src))
	for id, name := range src {
		out[id] = name
	}
	return out
}

// mapFor must be called with g.mu held.
func (g *genreCache) mapFor(mediaType models.MediaType) map[int64]string {
	if mediaType == models.MediaTypeTV {
		return g.tv
	}
	return g.movies
}
