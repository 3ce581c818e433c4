// SPDX-License-Identifier: EPL-2.0

package padbx

import "errors"

var ErrEmptyBounce = errors.New("bounce rendered no audio")
