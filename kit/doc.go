// SPDX-License-Identifier: EPL-2.0

// Package kit reads the persisted kit document (sampler.json) and the
// sample catalog it carries.
//
// A kit directory holds sampler.json next to one <id>.wav file per sample
// and, optionally, sequence.json. Values in the document are loosely
// typed: booleans may arrive as "true"/"false" strings and numbers as
// numeric strings. Flag and Number normalize them at decode time so the
// engine only ever sees bool and float64.
package kit
