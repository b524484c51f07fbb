// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

// Package stream derives the linear start/end change stream from a
// containment tree, synthesizing NON_ADDR filler regions so the stream
// covers the whole file with no gaps. It is the view code-generation
// passes walk in offset order.
package stream

import (
	"github.com/disasm6502/addrmap/internal/region"
	"github.com/disasm6502/addrmap/internal/tree"
)

// Kind distinguishes a region's start from its end in the change stream.
type Kind int

const (
	Start Kind = iota
	End
)

func (k Kind) String() string {
	if k == Start {
		return "START"
	}

	return "END"
}

// Event is one boundary in the change stream. Offset, for an End event,
// is the offset just past the region's last byte. Address is the address
// in effect at Offset after the change: for End it's the address that
// resumes in the parent's space, computed from the parent, not from the
// region's own address plus length. Start and End of the same region
// share the Region value.
type Event struct {
	Kind    Kind
	Offset  int32
	Address int32
	Region  region.Region
}

// Build walks the tree's top level in offset order, synthesizing a
// NON_ADDR filler between consecutive top-level children and at the file
// edges, and recursively emits a Start, then a node's children's events
// in order, then an End, for every real region.
//
// Fillers are only synthesized at the top level: the synthetic root never
// emits its own events, so without a filler a top-level gap would have no
// event announcing it. A real node's own gaps need no filler, because the
// node's own Start event already put its address context in effect.
func Build(t *tree.Tree) []Event {
	var events []Event

	root := t.Nodes[t.Root]
	cursor := root.Region.Offset
	end := root.Region.End()

	for _, childIdx := range root.Children {
		child := t.Nodes[childIdx].Region
		if child.Offset > cursor {
			emitFiller(t, t.Root, cursor, child.Offset, &events)
		}

		emitNode(t, childIdx, t.Root, &events)
		cursor = child.End()
	}

	if cursor < end {
		emitFiller(t, t.Root, cursor, end, &events)
	}

	return events
}

func emitNode(t *tree.Tree, nodeIdx, parentIdx int, events *[]Event) {
	r := t.Nodes[nodeIdx].Region

	*events = append(*events, Event{Kind: Start, Offset: r.Offset, Address: startAddress(r), Region: r})

	for _, childIdx := range t.Nodes[nodeIdx].Children {
		emitNode(t, childIdx, nodeIdx, events)
	}

	*events = append(*events, Event{Kind: End, Offset: r.End(), Address: resumeAddress(t, parentIdx, r.End()), Region: r})
}

func emitFiller(t *tree.Tree, parentIdx int, start, end int32, events *[]Event) {
	r := region.Region{Offset: start, Length: end - start, Address: region.NonAddr}

	*events = append(*events, Event{Kind: Start, Offset: start, Address: region.NonAddr, Region: r})
	*events = append(*events, Event{Kind: End, Offset: end, Address: resumeAddress(t, parentIdx, end), Region: r})
}

func startAddress(r region.Region) int32 {
	if !r.HasAddress() {
		return region.NonAddr
	}

	return r.Address
}

// resumeAddress is the address in effect in parentIdx's space at offset
// childEnd, i.e. the address that resumes once a child (real or
// synthesized filler) ends.
func resumeAddress(t *tree.Tree, parentIdx int, childEnd int32) int32 {
	parent := t.Nodes[parentIdx].Region
	if !parent.HasAddress() {
		return region.NonAddr
	}

	return parent.Address + (childEnd - parent.Offset)
}
