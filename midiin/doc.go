// SPDX-License-Identifier: EPL-2.0

// Package midiin triggers pads from a MIDI controller.
//
// Note-on messages inside a window of keys starting at a base note map to
// pads in order. The driver is registered by the caller, usually with a
// blank import of gitlab.com/gomidi/midi/v2/drivers/rtmididrv.
package midiin
