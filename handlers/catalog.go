package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"reelstream/models"
	"reelstream/services/tmdb"
)

type catalogService interface {
	IsConfigured() bool
	Trending(ctx context.Context, mediaType models.MediaType, timeWindow string, page int) (*models.ListResponse, error)
	Details(ctx context.Context, mediaType models.MediaType, id string) (*models.DetailedContent, error)
	Genres(ctx context.Context, mediaType models.MediaType) ([]models.Genre, error)
}

var _ catalogService = (*tmdb.Service)(nil)

type CatalogHandler struct {
	Service catalogService
}

func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// writeCatalogError maps upstream failures onto response codes: the upstream
// status is forwarded when we have it, configuration errors come back before
// any network call was made, everything else is a plain 500.
func writeCatalogError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	var statusErr *tmdb.StatusError
	switch {
	case errors.As(err, &statusErr):
		w.WriteHeader(statusErr.Code)
	case errors.Is(err, tmdb.ErrAPIKeyMissing):
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "TMDB API key is not configured"})
		return
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (h *CatalogHandler) Trending(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mediaType := models.MediaType(strings.ToLower(strings.TrimSpace(query.Get("mediaType"))))
	timeWindow := strings.ToLower(strings.TrimSpace(query.Get("timeWindow")))

	page := 1
	if pageStr := strings.TrimSpace(query.Get("page")); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	if !h.Service.IsConfigured() {
		writeCatalogError(w, tmdb.ErrAPIKeyMissing)
		return
	}

	resp, err := h.Service.Trending(r.Context(), mediaType, timeWindow, page)
	if err != nil {
		log.Printf("[catalog] trending error mediaType=%s timeWindow=%s page=%d: %v", mediaType, timeWindow, page, err)
		writeCatalogError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *CatalogHandler) Details(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := models.MediaType(strings.ToLower(strings.TrimSpace(vars["mediaType"])))
	id := strings.TrimSpace(vars["id"])

	if !mediaType.Valid() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "mediaType must be movie or tv"})
		return
	}
	if id == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "content id is required"})
		return
	}

	if !h.Service.IsConfigured() {
		writeCatalogError(w, tmdb.ErrAPIKeyMissing)
		return
	}

	details, err := h.Service.Details(r.Context(), mediaType, id)
	if err != nil {
		log.Printf("[catalog] details error mediaType=%s id=%s: %v", mediaType, id, err)
		writeCatalogError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}

func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := models.MediaType(strings.ToLower(strings.TrimSpace(vars["mediaType"])))

	if !mediaType.Valid() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "mediaType must be movie or tv"})
		return
	}

	if !h.Service.IsConfigured() {
		writeCatalogError(w, tmdb.ErrAPIKeyMissing)
		return
	}

	genres, err := h.Service.Genres(r.Context(), mediaType)
	if err != nil {
		log.Printf("[catalog] genres error mediaType=%s: %v", mediaType, err)
		writeCatalogError(w, err)
		return
	}
	if genres == nil {
		genres = []models.Genre{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(genres)
}
