package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"reelstream/services/mylist"
)

type myListService interface {
	Toggle(userID, contentID string) (bool, error)
	List(userID string) ([]string, error)
}

var _ myListService = (*mylist.Service)(nil)

type MyListHandler struct {
	Service myListService
}

func NewMyListHandler(service myListService) *MyListHandler {
	return &MyListHandler{Service: service}
}

func (h *MyListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(mux.Vars(r)["userID"])

	ids, err := h.Service.List(userID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if ids == nil {
		ids = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"ids": ids})
}

// ToggleRequest is the body for my-list toggle calls.
type ToggleRequest struct {
	ID string `json:"id"`
}

// ToggleResponse reports the membership state after the flip.
type ToggleResponse struct {
	ID       string `json:"id"`
	InMyList bool   `json:"inMyList"`
}

func (h *MyListHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(mux.Vars(r)["userID"])

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	inList, err := h.Service.Toggle(userID, req.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mylist.ErrUserIDRequired) || errors.Is(err, mylist.ErrIDRequired) {
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ToggleResponse{ID: strings.TrimSpace(req.ID), InMyList: inList})
}
