package catalog

import (
	"context"
	"log"

	"reelstream/models"
)

// Select opens the detail view for a content item. The view flips to
// loading immediately and exactly one fetch is issued for the selection.
// If the user selects something else before the fetch resolves, the stale
// response is discarded: only the latest selection may fill the view.
func (s *Session) Select(mediaType models.MediaType, id string) {
	if !mediaType.Valid() || id == "" {
		return
	}
	key := string(mediaType) + ":" + id

	s.mu.Lock()
	s.selectedKey = key
	s.detail = &DetailState{Loading: true}
	s.mu.Unlock()

	go s.fetchDetail(key, mediaType, id)
}

// CloseDetail dismisses the open detail view. Any in-flight fetch for it
// resolves against a cleared selection and is dropped.
func (s *Session) CloseDetail() {
	s.mu.Lock()
	s.selectedKey = ""
	s.detail = nil
	s.mu.Unlock()
}

func (s *Session) fetchDetail(key string, mediaType models.MediaType, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.orch.fetchTimeout)
	defer cancel()

	content, err := s.orch.provider.Details(ctx, mediaType, id)
	if err != nil {
		log.Printf("[catalog] detail fetch failed for %s %s: %v", mediaType, id, err)
		content = errorDetail(mediaType, id, err)
	}
	content.IsInMyList = s.orch.myList.Contains(s.UserID, content.ID)

	s.completeSelect(key, content)
}

// completeSelect installs a resolved detail record, unless the selection
// has moved on since the fetch was issued.
func (s *Session) completeSelect(key string, content *models.DetailedContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedKey != key {
		return
	}
	s.detail = &DetailState{Content: content}
}

// errorDetail synthesizes the placeholder record shown when a detail
// fetch fails, keeping the view renderable.
func errorDetail(mediaType models.MediaType, id string, err error) *models.DetailedContent {
	return &models.DetailedContent{
		ID:          id,
		Title:       "Error Loading Details",
		Description: err.Error(),
		Type:        models.DetailTypeFor(mediaType),
	}
}
