package text

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fetcher retrieves raw font bytes for a locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, locator string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, locator string) ([]byte, error) {
	return f(ctx, locator)
}

var embedded = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
}

// DefaultFetcher loads http and https locators over the network, embed:
// locators from the bundled Go fonts and everything else from the file
// system. A bare file name that does not exist locally is looked up among
// the installed system fonts.
type DefaultFetcher struct {
	// Client is used for http and https locators.
	// If nil, http.DefaultClient is used.
	Client *http.Client
}

// Fetch implements Fetcher.
func (f *DefaultFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return f.fetchHTTP(ctx, locator)
	case strings.HasPrefix(locator, EmbedScheme):
		data, ok := embedded[strings.TrimPrefix(locator, EmbedScheme)]
		if !ok {
			return nil, ErrUnknownEmbed
		}
		return data, nil
	default:
		return fetchFile(locator)
	}
}

func (f *DefaultFetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrFetchStatus, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func fetchFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil || !os.IsNotExist(err) {
		return data, err
	}
	if filepath.Base(path) != path {
		return nil, err
	}
	sys, findErr := findfont.Find(path)
	if findErr != nil {
		return nil, err
	}
	return os.ReadFile(sys)
}
