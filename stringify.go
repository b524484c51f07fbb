// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/disasm6502/addrmap/internal/tree"
)

// String returns a hierarchical tree diagram of the map's regions, just a
// wrapper for Fprint. If Fprint returns an error, String panics.
func (m *Map) String() string {
	w := new(strings.Builder)
	if err := m.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the map's regions to w.
//
// The order top to bottom is ascending offset, and the nesting reflects
// the containment tree: an overlay or bank-switch variant appears as a
// child of the region it replaces.
//
//	▼
//	├─ 0x0+0x2000 -> 0x8000
//	│  └─ 0x100+0x100 -> 0xc000
//	└─ 0x2000+0x2000 -> NON_ADDR
func (m *Map) Fprint(w io.Writer) error {
	if m == nil || w == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	if m.tree == nil {
		return nil
	}

	return fprintRec(w, m.tree, m.tree.Root, "")
}

func fprintRec(w io.Writer, t *tree.Tree, nodeIdx int, pad string) error {
	children := t.Nodes[nodeIdx].Children

	glyph := "├─ "
	spacer := "│  "

	for i, childIdx := range children {
		if i == len(children)-1 {
			glyph = "└─ "
			spacer = "   "
		}

		r := t.Nodes[childIdx].Region

		addr := "NON_ADDR"
		if r.HasAddress() {
			addr = fmt.Sprintf("%#x", r.Address)
		}

		length := fmt.Sprintf("%#x", r.Length)
		if t.Nodes[childIdx].WasFloating {
			length = "FLOATING"
		}

		if _, err := fmt.Fprintf(w, "%s%s%#x+%s -> %s\n", pad, glyph, r.Offset, length, addr); err != nil {
			return err
		}

		if err := fprintRec(w, t, childIdx, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}
