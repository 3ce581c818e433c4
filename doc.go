// SPDX-License-Identifier: EPL-2.0

// Package padbx is a pad sampler: sixteen slots, each holding a sample and
// its playback settings, played through a small audio graph.
//
// An Engine ties the pieces together:
//
//	doc, _ := kit.LoadDir(dir)
//	store := asset.NewStore(asset.DirFetcher{Dir: dir}, asset.NewDecoder(formats.NewRegistry()))
//	dev, _ := graph.NewOto(48000, 40*time.Millisecond)
//	eng := padbx.New(dev, store, doc)
//	st, err := eng.Trigger(ctx, 0)
//
// Triggering a slot replaces whatever the slot was playing. Volume, pitch,
// pan and loop edits reach a playing voice at once; reverse and sample
// changes apply from the next trigger.
//
// Bounce renders a single slot offline to a mono 16-bit WAV.
package padbx
