// SPDX-License-Identifier: EPL-2.0

// Package tone is the melodic instrument: simple oscillator voices played
// from a keyboard, next to the sample pads.
//
// Each note is an Osc with a fixed envelope: a 20ms ramp to full level, a
// hold, a decay toward a sustain level and, once released, an exponential
// fade that ends the note 120ms later.
package tone
