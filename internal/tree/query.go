// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package tree

import (
	"sort"

	"github.com/disasm6502/addrmap/internal/region"
)

// OffsetToNode walks downward from the root, at each level choosing the
// unique child whose range contains offset, and returns the index of the
// deepest node containing it.
func (t *Tree) OffsetToNode(offset int32) int {
	idx := t.Root

	for {
		children := t.Nodes[idx].Children

		// Last child whose Offset <= offset.
		pos := sort.Search(len(children), func(i int) bool {
			return t.Nodes[children[i]].Region.Offset > offset
		})
		if pos == 0 {
			return idx
		}

		candidate := children[pos-1]
		r := t.Nodes[candidate].Region
		if offset < r.Offset || offset >= r.End() {
			return idx
		}

		idx = candidate
	}
}

// OffsetToAddress returns the CPU address in effect at offset, or
// region.NonAddr if the containing node has no address.
func (t *Tree) OffsetToAddress(offset int32) int32 {
	n := t.Nodes[t.OffsetToNode(offset)]
	if !n.Region.HasAddress() {
		return region.NonAddr
	}

	return n.Region.Address + (offset - n.Region.Offset)
}

// AddressToOffset resolves targetAddr as seen from srcOffset's scope:
// it searches the containing node's subtree child-first (innermost,
// most-specific overlay wins), then walks up to ancestors on a miss,
// never revisiting a subtree it already exhausted.
func (t *Tree) AddressToOffset(srcOffset, targetAddr int32) (int32, bool) {
	start := t.OffsetToNode(srcOffset)
	ignore := -1

	for start != -1 {
		if off, ok := t.searchSubtree(start, targetAddr, ignore); ok {
			return off, true
		}

		ignore = start
		start = t.Nodes[start].Parent
	}

	return region.NotFound, false
}

// searchSubtree implements the child-first depth-first search described
// at the node rooted at nodeIdx, skipping the child at index ignore (the
// subtree the caller already searched on its way up).
func (t *Tree) searchSubtree(nodeIdx int, targetAddr int32, ignore int) (int32, bool) {
	node := &t.Nodes[nodeIdx]

	for _, childIdx := range node.Children {
		if childIdx == ignore {
			continue
		}

		if off, ok := t.searchSubtree(childIdx, targetAddr, -1); ok {
			return off, true
		}
	}

	r := node.Region
	if !r.HasAddress() || targetAddr < r.Address || targetAddr >= r.Address+r.Length {
		return 0, false
	}

	candidate := r.Offset + (targetAddr - r.Address)

	// A child carves a hole in the parent's reachable offsets, but the
	// exact shared-start point (candidate == child.Offset) stays the
	// parent's: a deeper sibling only claims strictly-interior offsets.
	for _, childIdx := range node.Children {
		cr := t.Nodes[childIdx].Region
		if candidate > cr.Offset && candidate < cr.End() {
			return 0, false
		}
	}

	return candidate, true
}

// IsRangeUnbroken reports whether [offset, offset+length) lies entirely
// within one tree node with no child carving into it.
func (t *Tree) IsRangeUnbroken(offset, length int32) bool {
	idx := t.OffsetToNode(offset)
	n := t.Nodes[idx]

	end := offset + length
	if offset < n.Region.Offset || end > n.Region.End() {
		return false
	}

	for _, childIdx := range n.Children {
		c := t.Nodes[childIdx].Region
		if offset < c.End() && c.Offset < end {
			return false
		}
	}

	return true
}
