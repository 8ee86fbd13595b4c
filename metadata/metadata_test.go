package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_OpenGraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head>
			<title>fallback title</title>
			<meta property="og:title" content="Big Buck Bunny">
			<meta property="og:description" content="A short film">
			<meta property="og:image" content="https://cdn.example.com/bbb.jpg">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	meta, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if meta.Title != "Big Buck Bunny" {
		t.Errorf("Title = %q, want Big Buck Bunny", meta.Title)
	}
	if meta.Description != "A short film" {
		t.Errorf("Description = %q, want A short film", meta.Description)
	}
	if meta.Thumbnail != "https://cdn.example.com/bbb.jpg" {
		t.Errorf("Thumbnail = %q", meta.Thumbnail)
	}
}

func TestFetch_FallbackTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<title>  Plain Page  </title>
			<meta name="description" content="plain description">
		</head></html>`))
	}))
	defer srv.Close()

	meta, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if meta.Title != "Plain Page" {
		t.Errorf("Title = %q, want Plain Page", meta.Title)
	}
	if meta.Description != "plain description" {
		t.Errorf("Description = %q, want plain description", meta.Description)
	}
	if meta.Thumbnail != "" {
		t.Errorf("Thumbnail = %q, want empty", meta.Thumbnail)
	}
}

func TestFetch_NoUsableTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	meta, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if meta.Title != "" || meta.Description != "" || meta.Thumbnail != "" {
		t.Errorf("Fetch() = %+v, want empty fields", meta)
	}
}

func TestFetch_NotFoundIsPermanent(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Fetch() error = nil, want status error")
	}
	if attempts != 1 {
		t.Errorf("404 was retried %d times, want a single attempt", attempts)
	}
}

func TestFetch_NonHTMLIsPermanent(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "video/mp4")
		w.Write([]byte{0, 0, 0})
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.Client()).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrUnusableContent) {
		t.Fatalf("Fetch() error = %v, want ErrUnusableContent", err)
	}
	if attempts != 1 {
		t.Errorf("non-html was retried %d times, want a single attempt", attempts)
	}
}
