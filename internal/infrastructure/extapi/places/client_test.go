package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SearchWorkspaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/textsearch/json") {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "workspaces in Lisbon" {
			t.Fatalf("unexpected query %q", got)
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [{
				"place_id": "p1",
				"name": "Cowork Central",
				"formatted_address": "Rua Augusta 1, Lisbon",
				"geometry": {"location": {"lat": 38.72, "lng": -9.14}},
				"rating": 4.6
			}]
		}`)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	results, err := client.SearchWorkspaces(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got := results[0]
	if got.PlaceID != "p1" || got.Name != "Cowork Central" || got.Latitude != 38.72 || got.Rating != 4.6 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestClient_SearchWorkspaces_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	results, err := client.SearchWorkspaces(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("zero results must not be an error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestClient_SearchWorkspaces_Denied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED"}`)
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)
	if _, err := client.SearchWorkspaces(context.Background(), "Lisbon"); err == nil {
		t.Fatal("expected error")
	}
}

func TestClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/findplacefromtext/json") {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"status":"OK","candidates":[{"geometry":{"location":{"lat":51.5,"lng":-0.12}}}]}`)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	lat, lng, err := client.Geocode(context.Background(), "London")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if lat != 51.5 || lng != -0.12 {
		t.Fatalf("unexpected coordinates: %v %v", lat, lng)
	}
}

func TestClient_Geocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","candidates":[]}`)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	if _, _, err := client.Geocode(context.Background(), "Atlantis"); err == nil {
		t.Fatal("expected error")
	}
}
