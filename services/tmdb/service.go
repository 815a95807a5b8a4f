package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"reelstream/models"
)

// Service is the catalog metadata service: it proxies the TMDB API and
// reshapes its loosely-typed payloads into the canonical content model.
type Service struct {
	client *client
	genres *genreCache
}

func NewService(apiKey, language string, httpc *http.Client) *Service {
	return &Service{
		client: newClient(apiKey, language, httpc),
		genres: newGenreCache(),
	}
}

// IsConfigured reports whether an upstream API key is present. Callers fail
// fast on false before issuing any network call.
func (s *Service) IsConfigured() bool {
	return s.client.isConfigured()
}

// Trending fetches one page of the trending feed and normalizes every entry.
// mediaType other than movie/tv falls back to "all"; timeWindow other than
// week falls back to "day". Entries without a resolvable type (people,
// unknown kinds) are dropped from the results.
func (s *Service) Trending(ctx context.Context, mediaType models.MediaType, timeWindow string, page int) (*models.ListResponse, error) {
	if !s.client.isConfigured() {
		return nil, ErrAPIKeyMissing
	}

	if !mediaType.Valid() {
		mediaType = models.MediaTypeAll
	}
	timeWindow = strings.ToLower(strings.TrimSpace(timeWindow))
	if timeWindow != "week" {
		timeWindow = "day"
	}

	s.genres.ensureLoaded(ctx, s.client)

	raw, err := s.client.trending(ctx, string(mediaType), timeWindow, page)
	if err != nil {
		return nil, err
	}

	// A request scoped to one media type fixes the type for every entry;
	// the mixed "all" feed relies on each entry's own discriminator.
	var knownType models.MediaType
	if mediaType.Valid() {
		knownType = mediaType
	}

	results := make([]models.ContentItem, 0, len(raw.Results))
	for i := range raw.Results {
		if item := normalizeListItem(&raw.Results[i], knownType, s.genres); item != nil {
			results = append(results, *item)
		}
	}

	return &models.ListResponse{
		Results:      results,
		Page:         raw.Page,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}, nil
}

// Details fetches and normalizes one full movie/tv record.
func (s *Service) Details(ctx context.Context, mediaType models.MediaType, id string) (*models.DetailedContent, error) {
	if !s.client.isConfigured() {
		return nil, ErrAPIKeyMissing
	}
	if !mediaType.Valid() {
		return nil, fmt.Errorf("tmdb: invalid media type %q", mediaType)
	}

	raw, err := s.client.details(ctx, string(mediaType), id)
	if err != nil {
		return nil, err
	}
	return normalizeDetails(raw, mediaType), nil
}

// Genres returns the cached genre mapping for one media type, warming the
// cache on demand. The list is sorted by name for stable output.
func (s *Service) Genres(ctx context.Context, mediaType models.MediaType) ([]models.Genre, error) {
	if !s.client.isConfigured() {
		return nil, ErrAPIKeyMissing
	}
	if !mediaType.Valid() {
		return nil, fmt.Errorf("tmdb: invalid media type %q", mediaType)
	}

	s.genres.ensureLoaded(ctx, s.client)

	out := make([]models.Genre, 0)
	for id, name := range s.genres.snapshot(mediaType) {
		out = append(out, models.Genre{ID: fmt.Sprintf("%d", id), Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
