// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirFetcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "7.wav"), []byte("payload"), 0o600); err != nil {
		t.Fatal(err)
	}

	f := DirFetcher{Dir: dir}
	if got := f.Path(7); got != filepath.Join(dir, "7.wav") {
		t.Errorf("Path(7) = %q", got)
	}

	data, err := f.Fetch(t.Context(), 7)
	if err != nil || string(data) != "payload" {
		t.Fatalf("Fetch(7) = (%q, %v)", data, err)
	}

	if _, err := f.Fetch(t.Context(), 8); !errors.Is(err, ErrAssetNotFound) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Fetch(8) error = %v, want %v wrapping %v", err, ErrAssetNotFound, os.ErrNotExist)
	}

	if got := (DirFetcher{Dir: dir, Ext: ".aif"}).Path(1); got != filepath.Join(dir, "1.aif") {
		t.Errorf("Path with Ext = %q", got)
	}
}

func TestFetchers_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	for name, f := range map[string]Fetcher{
		"dir": DirFetcher{Dir: t.TempDir()},
		"mem": MemFetcher{1: []byte("x")},
	} {
		if _, err := f.Fetch(ctx, 1); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: Fetch() error = %v, want %v", name, err, context.Canceled)
		}
	}
}

func TestFetcherFunc(t *testing.T) {
	t.Parallel()

	var got int
	f := FetcherFunc(func(_ context.Context, id int) ([]byte, error) {
		got = id
		return nil, nil
	})
	_, _ = f.Fetch(t.Context(), 5)
	if got != 5 {
		t.Errorf("FetcherFunc saw id %d, want 5", got)
	}
}
