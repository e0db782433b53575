package text

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFetcherHTTP(t *testing.T) {
	body := []byte(`{"glyphs":{}}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	f := &DefaultFetcher{Client: srv.Client()}

	got, err := f.Fetch(context.Background(), srv.URL+"/font.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("Fetch() = %q, want %q", got, body)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.json")
	if !errors.Is(err, ErrFetchStatus) {
		t.Errorf("Fetch(missing) error = %v, want ErrFetchStatus", err)
	}
}

func TestDefaultFetcherCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&DefaultFetcher{}).Fetch(ctx, "embed:goregular")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDefaultFetcherEmbed(t *testing.T) {
	f := &DefaultFetcher{}
	for _, loc := range []string{"embed:goregular", "embed:gobold"} {
		data, err := f.Fetch(context.Background(), loc)
		if err != nil || len(data) == 0 {
			t.Errorf("Fetch(%q) = %d bytes, %v", loc, len(data), err)
		}
	}
	if _, err := f.Fetch(context.Background(), "embed:nope"); !errors.Is(err, ErrUnknownEmbed) {
		t.Errorf("Fetch(embed:nope) error = %v, want ErrUnknownEmbed", err)
	}
}

func TestDefaultFetcherFile(t *testing.T) {
	f := &DefaultFetcher{}
	path := filepath.Join("testdata", "fixture.typeface.json")
	data, err := f.Fetch(context.Background(), path)
	if err != nil || len(data) == 0 {
		t.Fatalf("Fetch(%q) = %d bytes, %v", path, len(data), err)
	}

	_, err = f.Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Fetch(absent) error = %v, want os.ErrNotExist", err)
	}
}
