// SPDX-License-Identifier: EPL-2.0

// Package graph is a small pull-based audio graph.
//
// A Device owns a Mixer, the destination every playing node is connected
// to. The device's audio goroutine calls Mixer.Render for stereo
// interleaved float32 frames; the mixer asks each connected Node for the
// same number of frames and sums them. Nodes that report they are done are
// disconnected and their end callbacks run on a fresh goroutine, never on
// the render path.
//
// A sample voice is a Chain:
//
//	BufferSource -> Gain -> Panner -> Mixer
//
// Control values live in Params. Setting a Param is a single atomic store
// that may happen from any goroutine; the render side glides toward the new
// value over a few milliseconds.
//
// Offline renders on demand and is used by tests and by offline bouncing.
// Silent keeps time without output. Oto plays through the system audio
// output; the headless build tag replaces it with a Silent.
package graph
