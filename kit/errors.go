// SPDX-License-Identifier: EPL-2.0

package kit

import "errors"

var ErrInvalidDocument = errors.New("invalid kit document")
