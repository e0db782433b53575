package textmesh

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/textmesh/text"
)

func fixtureData(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fixture.typeface.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// fixtureExtractor serves the fixture for every locator.
func fixtureExtractor(t *testing.T) *text.Extractor {
	t.Helper()
	data := fixtureData(t)
	return text.NewExtractor(text.WithFetcher(text.FetcherFunc(
		func(ctx context.Context, _ string) ([]byte, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return data, nil
		})))
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
