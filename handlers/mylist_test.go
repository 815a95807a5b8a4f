package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"reelstream/services/mylist"
)

func TestMyListHandler_ToggleRoundTrip(t *testing.T) {
	service := mylist.NewService()
	handler := NewMyListHandler(service)

	toggle := func(id string) ToggleResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/users/u1/mylist/toggle", strings.NewReader(`{"id":"`+id+`"}`))
		req = mux.SetURLVars(req, map[string]string{"userID": "u1"})
		rec := httptest.NewRecorder()

		handler.Toggle(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
		var payload ToggleResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		return payload
	}

	if resp := toggle("603"); !resp.InMyList || resp.ID != "603" {
		t.Fatalf("expected first toggle to add, got %+v", resp)
	}
	if resp := toggle("603"); resp.InMyList {
		t.Fatalf("expected second toggle to remove, got %+v", resp)
	}
}

func TestMyListHandler_ToggleValidation(t *testing.T) {
	handler := NewMyListHandler(mylist.NewService())

	cases := []struct {
		name string
		user string
		body string
	}{
		{"empty id", "u1", `{"id":"  "}`},
		{"empty user", "", `{"id":"603"}`},
		{"malformed body", "u1", `{"id":`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/users/x/mylist/toggle", strings.NewReader(tc.body))
		req = mux.SetURLVars(req, map[string]string{"userID": tc.user})
		rec := httptest.NewRecorder()

		handler.Toggle(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d, got %d", tc.name, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestMyListHandler_List(t *testing.T) {
	service := mylist.NewService()
	if _, err := service.Toggle("u1", "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := service.Toggle("u1", "a"); err != nil {
		t.Fatal(err)
	}
	handler := NewMyListHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/mylist", nil)
	req = mux.SetURLVars(req, map[string]string{"userID": "u1"})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var payload map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	ids := payload["ids"]
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("expected sorted ids, got %v", ids)
	}
}

func TestMyListHandler_ListEmptyIsArray(t *testing.T) {
	handler := NewMyListHandler(mylist.NewService())

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/mylist", nil)
	req = mux.SetURLVars(req, map[string]string{"userID": "u1"})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ids":[]`) {
		t.Fatalf("expected empty array payload, got %q", rec.Body.String())
	}
}

func TestMyListHandler_ListMissingUser(t *testing.T) {
	handler := NewMyListHandler(mylist.NewService())

	req := httptest.NewRequest(http.MethodGet, "/api/users//mylist", nil)
	req = mux.SetURLVars(req, map[string]string{"userID": ""})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
