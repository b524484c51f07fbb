// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

// Package tree derives the hierarchical containment tree from a sorted
// region list: it resolves floating lengths, synthesizes the file-spanning
// root, and answers the offset/address queries that the root package
// exposes.
package tree

import "github.com/disasm6502/addrmap/internal/region"

// Node is an arena-allocated tree node, addressed by its index into
// Tree.Nodes rather than by pointer, so a whole-tree regeneration is one
// slice build with no pointer webs to unwind.
type Node struct {
	Region Region

	// WasFloating is true if this node's region had a floating length
	// before the tree resolved it; it lets callers match the node back to
	// its (offset, FloatingLen) identity in the authoritative region list.
	WasFloating bool

	// Parent is the index of the enclosing node, or -1 for the root.
	Parent int

	// Children holds child indices in ascending offset order.
	Children []int
}

// Region is an alias kept local to this package so callers of tree.Node
// don't need to additionally import internal/region for the common case.
type Region = region.Region

// Tree is the derived containment tree for one Map snapshot. Index 0 is
// always the synthetic file-spanning root.
type Tree struct {
	Nodes []Node
	Root  int
	Span  int32
}

// Build constructs the containment tree from a region list already sorted
// per region.Compare. It trusts that ordering; it does not re-sort.
func Build(regions []region.Region, span int32) *Tree {
	t := &Tree{Span: span, Root: 0}

	rootIdx := t.addNode(region.Region{Offset: 0, Length: span, Address: region.NonAddr}, false, -1)

	i := 0
	t.consume(rootIdx, 0, span, regions, &i)

	return t
}

func (t *Tree) addNode(r region.Region, wasFloating bool, parent int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Region: r, WasFloating: wasFloating, Parent: parent})
	return idx
}

// consume absorbs every region in the (already sorted) remainder of
// regions[*i:] whose offset falls within [parentStart, parentEnd) as a
// child of parentIdx, recursing immediately on each child so that
// same-start nested regions (a shared-start pyramid) naturally land at
// increasing depth rather than as siblings.
func (t *Tree) consume(parentIdx int, parentStart, parentEnd int32, regions []region.Region, i *int) {
	for *i < len(regions) {
		r := regions[*i]
		if r.Offset < parentStart || r.Offset >= parentEnd {
			return
		}

		*i++

		wasFloating := r.IsFloating()
		if wasFloating {
			next := parentEnd
			if *i < len(regions) {
				next = regions[*i].Offset
			}

			r.Length = min(parentEnd, next) - r.Offset
		}

		childIdx := t.addNode(r, wasFloating, parentIdx)
		t.Nodes[parentIdx].Children = append(t.Nodes[parentIdx].Children, childIdx)

		t.consume(childIdx, r.Offset, r.End(), regions, i)
	}
}
