// SPDX-License-Identifier: EPL-2.0

package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrDecodeFailure = errors.New("asset is not decodable audio")
)
