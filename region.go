// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import "github.com/disasm6502/addrmap/internal/region"

// Region and the constants below are aliased from internal/region so the
// sentinel values and comparison rules have exactly one definition, shared
// by the tree, the change stream and the validator.
type Region = region.Region

const (
	// FloatingLen marks a region whose length extends to the next natural
	// boundary at its nesting level, resolved once a sibling or the parent's
	// end is known.
	FloatingLen = region.FloatingLen

	// NonAddr marks a region, or a point in the change stream, with no
	// CPU-visible address.
	NonAddr = region.NonAddr

	// NotFound is returned by AddressToOffset when no reachable offset maps
	// to the requested address from the given scope.
	NotFound = region.NotFound

	// OffsetMax is the largest byte offset a region may start at.
	OffsetMax = region.OffsetMax

	// AddrMax is the largest CPU address a region may carry.
	AddrMax = region.AddrMax
)

// AddResult reports the outcome of AddRegion or EditRegion. Structural
// conflicts are reported this way, not as errors, because a caller
// iterating overlay candidates treats a conflict as an expected branch of
// control flow rather than a failure.
type AddResult int

const (
	// Okay is returned when the region was added or edited cleanly.
	Okay AddResult = iota

	// InvalidValue is returned for an argument fault: an offset that is
	// negative, past OffsetMax or not below the map's span; a length that is
	// zero, negative (other than FloatingLen) or runs past the span; or an
	// address that is negative (other than NonAddr) or past AddrMax. The
	// region list is left unmodified.
	InvalidValue

	// OverlapExisting is returned when the new region exactly duplicates an
	// existing region's (offset, length).
	OverlapExisting

	// OverlapFloating is returned when the new region shares its start
	// offset with an existing floating-length region.
	OverlapFloating

	// StraddleExisting is returned when the new region partially overlaps
	// an existing one across either edge, instead of nesting inside,
	// enclosing, or sharing a start with it.
	StraddleExisting
)

func (a AddResult) String() string {
	switch a {
	case Okay:
		return "Okay"
	case InvalidValue:
		return "InvalidValue"
	case OverlapExisting:
		return "OverlapExisting"
	case OverlapFloating:
		return "OverlapFloating"
	case StraddleExisting:
		return "StraddleExisting"
	default:
		return "AddResult(unknown)"
	}
}
