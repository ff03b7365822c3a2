package timezone

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Lookup(t *testing.T) {
	at := time.Unix(1700000000, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("timestamp") != "1700000000" {
			t.Fatalf("unexpected timestamp %q", q.Get("timestamp"))
		}
		if q.Get("location") == "" {
			t.Fatal("missing location")
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"timeZoneId": "Europe/Lisbon",
			"timeZoneName": "Western European Standard Time",
			"dstOffset": 0,
			"rawOffset": 0
		}`)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	info, err := client.Lookup(context.Background(), 38.72, -9.14, at)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if info.TimezoneID != "Europe/Lisbon" || info.TimezoneName != "Western European Standard Time" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestClient_Lookup_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED","errorMessage":"The provided API key is invalid."}`)
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)
	if _, err := client.Lookup(context.Background(), 0, 0, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}
