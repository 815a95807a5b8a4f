package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"reelstream/models"
)

// fallbackHero is shown when the hero fetch fails or yields no usable item.
var fallbackHero = models.ContentItem{
	ID:          "featured-fallback",
	Title:       "Featured Movie Title",
	Description: "This is a captivating description of the featured content that draws viewers in.",
	Type:        models.MediaTypeMovie,
}

// CategoryState is one browse row plus its independent loading flag.
type CategoryState struct {
	ID      string               `json:"id"`
	Title   string               `json:"title"`
	Loading bool                 `json:"loading"`
	Items   []models.ContentItem `json:"items"`
}

// DetailState is the open detail view: a loading flag, then either the
// normalized record or an error placeholder.
type DetailState struct {
	Loading bool                    `json:"loading"`
	Content *models.DetailedContent `json:"content,omitempty"`
}

// Snapshot is a point-in-time copy of a session, safe to encode while the
// session keeps mutating underneath.
type Snapshot struct {
	SessionID   string              `json:"sessionId"`
	UserID      string              `json:"userId"`
	Hero        *models.ContentItem `json:"hero,omitempty"`
	HeroLoading bool                `json:"heroLoading"`
	Categories  []CategoryState     `json:"categories"`
	Detail      *DetailState        `json:"detail,omitempty"`
}

// Session is one user's live browse state: a hero spot, ordered category
// rows that load independently, and at most one open detail view.
type Session struct {
	ID     string
	UserID string

	orch *Orchestrator

	mu          sync.RWMutex
	hero        *models.ContentItem
	heroLoading bool
	categories  []CategoryState
	detail      *DetailState
	selectedKey string

	activated chan struct{}
}

func newSession(id, userID string, orch *Orchestrator) *Session {
	cats := make([]CategoryState, len(orch.categories))
	for i, c := range orch.categories {
		cats[i] = CategoryState{ID: c.ID, Title: c.Title, Loading: true, Items: []models.ContentItem{}}
	}
	return &Session{
		ID:          id,
		UserID:      userID,
		orch:        orch,
		heroLoading: true,
		categories:  cats,
		activated:   make(chan struct{}),
	}
}

// activate runs the initial hero and per-category fetches concurrently.
// Each row settles on its own; one failed fetch never empties the others.
func (s *Session) activate() {
	p := pool.New()
	p.Go(s.loadHero)
	for i, c := range s.orch.categories {
		i, c := i, c
		p.Go(func() { s.loadCategory(i, c) })
	}
	p.Wait()
	close(s.activated)
}

// Activated is closed once the initial fetches have all settled.
func (s *Session) Activated() <-chan struct{} {
	return s.activated
}

func (s *Session) loadHero() {
	ctx, cancel := context.WithTimeout(context.Background(), s.orch.fetchTimeout)
	defer cancel()

	resp, err := s.orch.provider.Trending(ctx, models.MediaTypeAll, "day", 1)
	hero := fallbackHero
	if err != nil {
		log.Printf("[catalog] hero fetch failed for session %s: %v", s.ID, err)
	} else if len(resp.Results) > 0 {
		hero = resp.Results[0]
	} else {
		log.Printf("[catalog] hero fetch returned no items for session %s", s.ID)
	}
	hero.IsInMyList = s.orch.myList.Contains(s.UserID, hero.ID)

	s.mu.Lock()
	s.hero = &hero
	s.heroLoading = false
	s.mu.Unlock()
}

func (s *Session) loadCategory(idx int, c Category) {
	ctx, cancel := context.WithTimeout(context.Background(), s.orch.fetchTimeout)
	defer cancel()

	items := []models.ContentItem{}
	resp, err := s.orch.provider.Trending(ctx, c.MediaType, c.TimeWindow, 1)
	if err != nil {
		log.Printf("[catalog] category %s fetch failed for session %s: %v", c.ID, s.ID, err)
	} else {
		items = resp.Results
	}
	for i := range items {
		items[i].IsInMyList = s.orch.myList.Contains(s.UserID, items[i].ID)
	}

	s.mu.Lock()
	s.categories[idx].Items = items
	s.categories[idx].Loading = false
	s.mu.Unlock()
}

// Snapshot deep-copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SessionID:   s.ID,
		UserID:      s.UserID,
		HeroLoading: s.heroLoading,
		Categories:  make([]CategoryState, len(s.categories)),
	}
	if s.hero != nil {
		hero := *s.hero
		snap.Hero = &hero
	}
	for i, c := range s.categories {
		copied := c
		copied.Items = append([]models.ContentItem(nil), c.Items...)
		snap.Categories[i] = copied
	}
	if s.detail != nil {
		d := *s.detail
		if d.Content != nil {
			content := *d.Content
			d.Content = &content
		}
		snap.Detail = &d
	}
	return snap
}

// applyMyList flips membership flags in place wherever the content id
// appears in this session.
func (s *Session) applyMyList(contentID string, inList bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hero != nil && s.hero.ID == contentID {
		s.hero.IsInMyList = inList
	}
	for i := range s.categories {
		for j := range s.categories[i].Items {
			if s.categories[i].Items[j].ID == contentID {
				s.categories[i].Items[j].IsInMyList = inList
			}
		}
	}
	if s.detail != nil && s.detail.Content != nil && s.detail.Content.ID == contentID {
		s.detail.Content.IsInMyList = inList
	}
}
