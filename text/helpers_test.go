package text

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func fixtureData(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fixture.typeface.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// countingFetcher serves data for every locator and counts calls.
type countingFetcher struct {
	data  []byte
	err   error
	calls atomic.Int32
}

func (f *countingFetcher) Fetch(ctx context.Context, _ string) ([]byte, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.data, f.err
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
