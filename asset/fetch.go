// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Fetcher returns the raw bytes stored for a sample id.
type Fetcher interface {
	Fetch(ctx context.Context, sampleID int) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, sampleID int) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, sampleID int) ([]byte, error) {
	return f(ctx, sampleID)
}

// DefaultExt is the file extension DirFetcher uses when Ext is empty.
const DefaultExt = ".wav"

// DirFetcher reads <Dir>/<id><Ext>, the layout a kit directory uses.
type DirFetcher struct {
	Dir string
	Ext string
}

// Path returns the file DirFetcher reads for sampleID.
func (f DirFetcher) Path(sampleID int) string {
	ext := f.Ext
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(f.Dir, strconv.Itoa(sampleID)+ext)
}

func (f DirFetcher) Fetch(ctx context.Context, sampleID int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path(sampleID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	}

	return data, nil
}

// MemFetcher serves payloads from memory.
type MemFetcher map[int][]byte

func (m MemFetcher) Fetch(ctx context.Context, sampleID int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, ok := m[sampleID]
	if !ok {
		return nil, fmt.Errorf("%w: sample %d", ErrAssetNotFound, sampleID)
	}

	return data, nil
}
