// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

// Package addrmap binds file byte-offsets to CPU addresses for a 6502/65816
// disassembler.
//
// A Map holds the authoritative, sorted list of regions for one file image
// and derives two read views from it on every mutation: a containment tree
// for offset/address lookups, and a linear start/end change stream for
// code-generation passes that walk offsets in order.
//
// Regions may overlap by full containment (never by partial straddle), may
// carry a floating length resolved against their siblings by the tree, and
// may be marked non-addressable for file content with no CPU-visible
// address (loader headers, padding). Overlay and bank-switched code is
// handled by scoping address lookups to the offset that asked for them:
// [Map.AddressToOffset] prefers matches visible from the querying offset's
// own region before searching outward.
//
// Map is single-writer, multi-reader: mutators replace the region list and
// both derived views atomically, but the package does no internal locking.
// Callers sharing a Map across goroutines must serialize mutations
// themselves.
package addrmap
