package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"reelstream/models"
	"reelstream/services/catalog"
)

type browseOrchestrator interface {
	OpenSession(userID string) *catalog.Session
	Session(id string) (*catalog.Session, bool)
	CloseSession(id string) bool
}

var _ browseOrchestrator = (*catalog.Orchestrator)(nil)

// BrowseHandler exposes browse sessions: the server-held hero/category/detail
// state that clients create, poll and drive selections through.
type BrowseHandler struct {
	Orchestrator browseOrchestrator
}

func NewBrowseHandler(orch browseOrchestrator) *BrowseHandler {
	return &BrowseHandler{Orchestrator: orch}
}

func (h *BrowseHandler) session(w http.ResponseWriter, r *http.Request) (*catalog.Session, bool) {
	id := strings.TrimSpace(mux.Vars(r)["sessionID"])
	s, ok := h.Orchestrator.Session(id)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": catalog.ErrSessionNotFound.Error()})
		return nil, false
	}
	return s, true
}

// CreateSessionRequest is the body for opening a browse session.
type CreateSessionRequest struct {
	UserID string `json:"userId"`
}

// CreateSessionResponse carries the id clients poll the session under.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

func (h *BrowseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}
	}

	s := h.Orchestrator.OpenSession(strings.TrimSpace(req.UserID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateSessionResponse{SessionID: s.ID})
}

func (h *BrowseHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Snapshot())
}

// SelectRequest identifies the content item a detail view is opened for.
type SelectRequest struct {
	MediaType string `json:"mediaType"`
	ID        string `json:"id"`
}

func (h *BrowseHandler) Select(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	mediaType := models.MediaType(strings.ToLower(strings.TrimSpace(req.MediaType)))
	id := strings.TrimSpace(req.ID)
	if !mediaType.Valid() || id == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "mediaType (movie|tv) and id are required"})
		return
	}

	s.Select(mediaType, id)
	w.WriteHeader(http.StatusAccepted)
}

func (h *BrowseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	snap := s.Snapshot()
	if snap.Detail == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "no content selected"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.Detail)
}

func (h *BrowseHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["sessionID"])
	if !h.Orchestrator.CloseSession(id) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": catalog.ErrSessionNotFound.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
