package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchFixture = `{
  "results": [
    {
      "id": "abc123",
      "description": null,
      "alt_description": "friends at a cafe terrace",
      "urls": {"regular": "https://images.example/abc123?w=1080"},
      "user": {"name": "Jean Dupont", "links": {"html": "https://unsplash.com/@jean"}},
      "links": {"download_location": "https://api.example/photos/abc123/download"}
    },
    {
      "id": "def456",
      "description": "wine bar",
      "alt_description": "ignored",
      "urls": {"regular": "https://images.example/def456?w=1080"},
      "user": {"name": "Marie", "links": {"html": "https://unsplash.com/@marie"}},
      "links": {"download_location": "https://api.example/photos/def456/download"}
    }
  ]
}`

func TestSearchParsesResults(t *testing.T) {
	var gotQuery, gotOrientation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/photos" {
			t.Errorf("path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Client-ID key" {
			t.Errorf("authorization %q", r.Header.Get("Authorization"))
		}
		gotQuery = r.URL.Query().Get("query")
		gotOrientation = r.URL.Query().Get("orientation")
		w.Write([]byte(searchFixture))
	}))
	defer server.Close()

	u := &Unsplash{AccessKey: "key", BaseURL: server.URL, Client: server.Client()}

	photos, err := u.Search(context.Background(), "cafe_terrace", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "cafe terrace people" {
		t.Errorf("preset key not expanded, query %q", gotQuery)
	}
	if gotOrientation != "portrait" {
		t.Errorf("orientation %q", gotOrientation)
	}
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	// Null description falls back to alt_description.
	if photos[0].Description != "friends at a cafe terrace" {
		t.Errorf("description %q", photos[0].Description)
	}
	if photos[1].Description != "wine bar" {
		t.Errorf("description %q", photos[1].Description)
	}
	if photos[0].AuthorName != "Jean Dupont" || photos[0].AuthorLink != "https://unsplash.com/@jean" {
		t.Errorf("attribution %q %q", photos[0].AuthorName, photos[0].AuthorLink)
	}
	if photos[0].DownloadLocation != "https://api.example/photos/abc123/download" {
		t.Errorf("download location %q", photos[0].DownloadLocation)
	}
}

func TestSearchUnconfigured(t *testing.T) {
	u := &Unsplash{BaseURL: "http://unused", Client: http.DefaultClient}
	if _, err := u.Search(context.Background(), "brunch", 5); err == nil {
		t.Error("expected error without access key")
	}
}

func TestDownloadTriggersDownloadLocation(t *testing.T) {
	triggered := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photo.jpg":
			w.Write([]byte("imagedata"))
		case "/trigger":
			triggered = true
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	u := &Unsplash{AccessKey: "key", BaseURL: server.URL, Client: server.Client()}
	photo := Photo{
		ID:               "abc123",
		URL:              server.URL + "/photo.jpg",
		DownloadLocation: server.URL + "/trigger",
	}

	data, err := u.Download(context.Background(), photo)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(data) != "imagedata" {
		t.Errorf("data %q", data)
	}
	if !triggered {
		t.Error("download location was not reported")
	}
}
