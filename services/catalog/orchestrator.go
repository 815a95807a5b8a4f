package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"reelstream/models"
	"reelstream/services/tmdb"
)

// ErrSessionNotFound is returned for lookups of unknown or closed sessions.
var ErrSessionNotFound = errors.New("browse session not found")

// metadataProvider is the slice of the tmdb service the orchestrator needs.
type metadataProvider interface {
	Trending(ctx context.Context, mediaType models.MediaType, timeWindow string, page int) (*models.ListResponse, error)
	Details(ctx context.Context, mediaType models.MediaType, id string) (*models.DetailedContent, error)
}

var _ metadataProvider = (*tmdb.Service)(nil)

// membership answers "is this content id on this user's list" at merge time.
type membership interface {
	Contains(userID, contentID string) bool
}

// Category is one configured browse row, fetched from the trending feed.
type Category struct {
	ID         string
	Title      string
	MediaType  models.MediaType
	TimeWindow string
}

// DefaultCategories returns the stock browse rows.
func DefaultCategories() []Category {
	return []Category{
		{ID: "trending-movies", Title: "Trending Movies", MediaType: models.MediaTypeMovie, TimeWindow: "week"},
		{ID: "trending-tv", Title: "Trending TV Shows", MediaType: models.MediaTypeTV, TimeWindow: "week"},
	}
}

// Orchestrator owns the active browse sessions and fans my-list changes out
// to them so membership flags stay current without refetching the catalog.
type Orchestrator struct {
	provider   metadataProvider
	myList     membership
	categories []Category

	fetchTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewOrchestrator(provider metadataProvider, myList membership, categories []Category) *Orchestrator {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	return &Orchestrator{
		provider:     provider,
		myList:       myList,
		categories:   categories,
		fetchTimeout: 15 * time.Second,
		sessions:     make(map[string]*Session),
	}
}

// OpenSession creates a browse session for the user and starts the hero and
// category fetches in the background. The snapshot is immediately readable;
// rows flip their loading flags independently as their fetches settle.
func (o *Orchestrator) OpenSession(userID string) *Session {
	if userID == "" {
		userID = models.DefaultUserID
	}
	s := newSession(uuid.NewString(), userID, o)

	o.mu.Lock()
	o.sessions[s.ID] = s
	o.mu.Unlock()

	go s.activate()
	return s
}

// Session looks up an active session by id.
func (o *Orchestrator) Session(id string) (*Session, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	s, ok := o.sessions[id]
	return s, ok
}

// CloseSession drops a session. In-flight fetches finish against the
// detached session and are garbage collected with it.
func (o *Orchestrator) CloseSession(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.sessions[id]; !ok {
		return false
	}
	delete(o.sessions, id)
	return true
}

// OnMyListChange recomputes membership flags in place across every session
// belonging to the user: hero, all held category items, and the open detail
// record. Wire this as a mylist.Service listener.
func (o *Orchestrator) OnMyListChange(userID, contentID string, inList bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, s := range o.sessions {
		if s.UserID == userID {
			s.applyMyList(contentID, inList)
		}
	}
}
