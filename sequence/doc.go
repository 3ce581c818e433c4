// SPDX-License-Identifier: EPL-2.0

// Package sequence projects persisted note sequences onto an 8x8 step grid
// and steps through the grid, triggering slots.
//
// Projection is lossy: notes are bucketed by time offset into columns and
// by pitch class into rows, and colliding notes share a cell.
package sequence
