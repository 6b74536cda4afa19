// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument wraps every decoding, validation and build failure.
var ErrInvalidDocument = errors.New("circuit: invalid document")

// docErrorf tags err with a location and ErrInvalidDocument, keeping err in the chain.
func docErrorf(where string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, where, err)
}
