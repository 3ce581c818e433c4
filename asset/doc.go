// SPDX-License-Identifier: EPL-2.0

// Package asset turns sample ids into decoded audio buffers.
//
// A Store fetches raw bytes through a Fetcher, decodes them through a
// Decoder and keeps the result for the rest of the session. Buffers are
// never evicted and are shared read-only by every voice that plays them.
//
//	store := asset.NewStore(asset.DirFetcher{Dir: kitDir}, asset.NewDecoder(nil))
//	buf, err := store.Buffer(ctx, 3)
//	rev, err := store.PlayableBuffer(ctx, 3, true)
//
// Concurrent requests for an id that is not cached yet share a single
// fetch and decode. A caller whose context ends stops waiting, but the
// decode it started still completes and lands in the cache.
//
// Failures are reported as ErrAssetNotFound when the bytes cannot be
// fetched and ErrDecodeFailure when they are not audio; test with
// errors.Is. Nothing is retried.
package asset
