// SPDX-License-Identifier: EPL-2.0

package voice

import "errors"

// ErrNoSampleAssigned is returned when a slot without a sample is
// triggered. Nothing is played; it is informational.
var ErrNoSampleAssigned = errors.New("no sample assigned")
