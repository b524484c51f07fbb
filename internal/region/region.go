// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

// Package region defines the Region value type shared by the region list,
// the tree, the change stream and the validator. It lives under internal
// so the sentinels and comparison rules have exactly one definition; the
// root package re-exports the type with a plain alias.
package region

import "fmt"

const (
	// FloatingLen marks a region whose length extends to the next natural
	// boundary; it is resolved by the tree and never stored resolved.
	FloatingLen int32 = -1

	// NonAddr marks a region (or a point in the file) with no CPU-visible
	// address.
	NonAddr int32 = -2

	// NotFound is returned by address-to-offset lookups that find no
	// reachable offset for the requested address.
	NotFound int32 = -1

	// OffsetMax is the largest byte offset a region may start at.
	OffsetMax int32 = 1<<24 - 1

	// AddrMax is the largest CPU address a region may carry.
	AddrMax int32 = 1<<24 - 1
)

// Region is a half-open [Offset, Offset+Length) byte range mapping onto a
// CPU address range starting at Address. Length may be FloatingLen, which
// the tree resolves (it is never stored resolved in the authoritative
// list), and Address may be NonAddr.
//
// IsRelative is carried through to code generation untouched; the core
// neither reads nor enforces it.
type Region struct {
	Offset     int32
	Length     int32
	Address    int32
	IsRelative bool
}

// IsFloating reports whether the region's length has not yet been
// resolved against its siblings.
func (r Region) IsFloating() bool {
	return r.Length == FloatingLen
}

// HasAddress reports whether the region carries a real CPU address.
func (r Region) HasAddress() bool {
	return r.Address != NonAddr
}

// End returns the offset just past the region's last byte. Only
// meaningful for a region with a resolved (non-floating) length.
func (r Region) End() int32 {
	return r.Offset + r.Length
}

// Key identifies a region in the structural (region-list) view: a
// floating region is keyed by (Offset, FloatingLen). The result is
// comparable with == and usable as a map key.
func (r Region) Key() [2]int32 {
	return [2]int32{r.Offset, r.Length}
}

// Compare orders regions primarily by ascending Offset, secondarily by
// descending Length, so an enclosing parent sorts before a same-start
// child. Two floating regions at the same offset (rejected by the region
// list before they could coexist) compare equal.
func Compare(a, b Region) int {
	if a.Offset != b.Offset {
		if a.Offset < b.Offset {
			return -1
		}
		return 1
	}

	af, bf := a.IsFloating(), b.IsFloating()
	switch {
	case af && bf:
		return 0
	case af:
		// A floating entry never coexists with a same-offset sibling in a
		// valid list; when compared anyway, sort it last.
		return 1
	case bf:
		return -1
	case a.Length == b.Length:
		return 0
	case a.Length > b.Length:
		return -1
	default:
		return 1
	}
}

// String renders a region for diagnostics.
func (r Region) String() string {
	length := fmt.Sprintf("%#x", r.Length)
	if r.IsFloating() {
		length = "FLOATING"
	}

	addr := fmt.Sprintf("%#x", r.Address)
	if !r.HasAddress() {
		addr = "NON_ADDR"
	}

	return fmt.Sprintf("Region{offset:%#x length:%s address:%s relative:%t}", r.Offset, length, addr, r.IsRelative)
}
