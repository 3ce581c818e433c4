// SPDX-License-Identifier: EPL-2.0

package tone

import "errors"

var ErrUnknownWave = errors.New("unknown waveform")
