// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// Fingerprint returns a hash of the authoritative region list, stable
// across process runs for the same span and regions in the same order.
// Two maps with equal Fingerprint values are not guaranteed semantically
// equal under hash collision, but in practice this is the cheap check a
// caller runs before falling back to a full Entries comparison.
func (m *Map) Fingerprint() uint64 {
	buf := make([]byte, 0, 17*len(m.regions)+4)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.span))

	for _, r := range m.regions {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r.Offset))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r.Length))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r.Address))

		flag := byte(0)
		if r.IsRelative {
			flag = 1
		}
		buf = append(buf, flag)
	}

	return farm.Hash64(buf)
}
