// SPDX-License-Identifier: EPL-2.0

// Package voice plays slots.
//
// A Manager keeps at most one Voice per slot. Triggering a slot tears down
// the voice it is playing, synchronously, before the new voice is
// connected, so calls for one slot take effect in the order they are made.
// A voice that finishes on its own clears its registration only while it
// is still the registered voice for its slot; a late end from a voice that
// was already replaced is ignored.
//
// A Binder applies edits of volume, pitch, pan and loop to the slot table
// and, when the slot is playing, to the live voice without restarting it.
package voice
