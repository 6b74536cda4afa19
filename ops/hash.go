// SPDX-License-Identifier: MIT

package ops

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Hash returns a blake3 fingerprint of the descriptor. Equal descriptors hash
// equally; wire labels contribute their dynamic type as well as their value,
// so wire 0 and wire "0" differ.
func (o Operator) Hash() [32]byte {
	buf := []byte{byte(o.family)}
	buf = o.wires.AppendKey(buf)
	if o.hasSubspace {
		buf = append(buf, 1, byte(o.subspace[0]), byte(o.subspace[1]))
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, byte(o.control))

	return blake3.Sum256(buf)
}

// HashHex is Hash rendered as lowercase hex.
func (o Operator) HashHex() string {
	h := o.Hash()
	return hex.EncodeToString(h[:])
}
