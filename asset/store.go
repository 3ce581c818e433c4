// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/ik5/padbx/audio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const defaultPreloadLimit = 4

// Store caches decoded buffers by sample id.
type Store struct {
	fetch Fetcher
	dec   Decoder
	log   *slog.Logger

	mu           sync.Mutex
	cache        map[int]*audio.Buffer
	reversed     map[int]*audio.Buffer
	cacheReverse bool

	flight       singleflight.Group
	decodes      atomic.Int64
	preloadLimit int
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithReverseCache keeps reversed copies per id instead of building a new
// one for every reversed playback.
func WithReverseCache(on bool) Option {
	return func(s *Store) { s.cacheReverse = on }
}

// WithPreloadLimit bounds how many decodes Preload runs at once.
func WithPreloadLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.preloadLimit = n
		}
	}
}

func NewStore(f Fetcher, d Decoder, opts ...Option) *Store {
	s := &Store{
		fetch:        f,
		dec:          d,
		log:          slog.Default(),
		cache:        make(map[int]*audio.Buffer),
		reversed:     make(map[int]*audio.Buffer),
		preloadLimit: defaultPreloadLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) lookup(sampleID int) (*audio.Buffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.cache[sampleID]
	return b, ok
}

// Buffer returns the decoded buffer for sampleID, decoding it on first use.
// Every call for a cached id returns the same *audio.Buffer.
func (s *Store) Buffer(ctx context.Context, sampleID int) (*audio.Buffer, error) {
	if b, ok := s.lookup(sampleID); ok {
		return b, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The decode outlives the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(strconv.Itoa(sampleID), func() (any, error) {
		return s.load(loadCtx, sampleID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*audio.Buffer), nil
	}
}

func (s *Store) load(ctx context.Context, sampleID int) (*audio.Buffer, error) {
	if b, ok := s.lookup(sampleID); ok {
		return b, nil
	}

	raw, err := s.fetch.Fetch(ctx, sampleID)
	if err != nil {
		s.log.Warn("fetch failed", "sample", sampleID, "err", err)
		return nil, wrapSample(sampleID, ErrAssetNotFound, err)
	}

	buf, err := s.dec.Decode(raw)
	s.decodes.Add(1)
	if err != nil {
		s.log.Warn("decode failed", "sample", sampleID, "bytes", len(raw), "err", err)
		return nil, wrapSample(sampleID, ErrDecodeFailure, err)
	}

	s.mu.Lock()
	s.cache[sampleID] = buf
	s.mu.Unlock()

	s.log.Debug("sample decoded",
		"sample", sampleID,
		"channels", buf.Channels(),
		"rate", buf.SampleRate(),
		"frames", buf.Length())

	return buf, nil
}

// wrapSample prefixes err with the sample id and adds kind unless err
// already carries it.
func wrapSample(sampleID int, kind, err error) error {
	if errors.Is(err, kind) {
		return fmt.Errorf("sample %d: %w", sampleID, err)
	}
	return fmt.Errorf("sample %d: %w: %w", sampleID, kind, err)
}

// PlayableBuffer returns the buffer as it should be played: the cached
// buffer, or a reversed copy of it.
func (s *Store) PlayableBuffer(ctx context.Context, sampleID int, reverse bool) (*audio.Buffer, error) {
	buf, err := s.Buffer(ctx, sampleID)
	if err != nil || !reverse {
		return buf, err
	}

	if !s.cacheReverse {
		return audio.Reverse(buf), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rev, ok := s.reversed[sampleID]
	if !ok {
		rev = audio.Reverse(buf)
		s.reversed[sampleID] = rev
	}

	return rev, nil
}

// Preload decodes ids in parallel. Ids that fail are logged and skipped;
// only cancellation of ctx is returned.
func (s *Store) Preload(ctx context.Context, ids []int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.preloadLimit)

	for _, id := range ids {
		g.Go(func() error {
			if _, err := s.Buffer(gctx, id); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Info("preload skipped sample", "sample", id, "err", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Cached reports whether sampleID has been decoded.
func (s *Store) Cached(sampleID int) bool {
	_, ok := s.lookup(sampleID)
	return ok
}

// Len is the number of cached buffers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.cache)
}

// Decodes counts decode attempts, failed ones included.
func (s *Store) Decodes() int {
	return int(s.decodes.Load())
}
