package mylist

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrIDRequired     = errors.New("content id is required")
)

// Listener is notified after every toggle so held catalog state can
// recompute membership flags in place.
type Listener func(userID, contentID string, inList bool)

// Service holds each user's "my list" as an in-memory id set. Nothing is
// persisted: the list is session-scoped by design and lost on restart.
type Service struct {
	mu        sync.RWMutex
	sets      map[string]map[string]struct{}
	listeners []Listener
}

func NewService() *Service {
	return &Service{sets: make(map[string]map[string]struct{})}
}

// AddListener registers a toggle subscriber. Registration happens during
// wiring, before any traffic, so no lock is taken on the slice afterwards.
func (s *Service) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Toggle flips membership of contentID for the user and reports the new
// state. Listeners run synchronously after the state change.
func (s *Service) Toggle(userID, contentID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	contentID = strings.TrimSpace(contentID)
	if userID == "" {
		return false, ErrUserIDRequired
	}
	if contentID == "" {
		return false, ErrIDRequired
	}

	s.mu.Lock()
	set, ok := s.sets[userID]
	if !ok {
		set = make(map[string]struct{})
		s.sets[userID] = set
	}
	_, present := set[contentID]
	if present {
		delete(set, contentID)
	} else {
		set[contentID] = struct{}{}
	}
	s.mu.Unlock()

	inList := !present
	for _, l := range s.listeners {
		l(userID, contentID, inList)
	}
	return inList, nil
}

// Contains reports membership of contentID in the user's list.
func (s *Service) Contains(userID, contentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[userID]
	if !ok {
		return false
	}
	_, present := set[contentID]
	return present
}

// List returns the user's content ids, sorted for stable output.
func (s *Service) List(userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sets[userID]))
	for id := range s.sets[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
