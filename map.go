// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/disasm6502/addrmap/internal/region"
	"github.com/disasm6502/addrmap/internal/stream"
	"github.com/disasm6502/addrmap/internal/tree"
	"github.com/disasm6502/addrmap/internal/validate"
)

// Map binds file byte offsets to CPU addresses for a single ROM image.
// The region list is the only authoritative state; the containment tree
// and the change stream are views derived wholesale from it on every
// mutation.
//
// The zero value is ready to use for a Map spanning 0 bytes; call New to
// get a Map over a useful span.
//
// A Map is safe for concurrent reads. Mutation (AddRegion, EditRegion,
// RemoveRegion) must be externally synchronized against both other
// mutations and concurrent reads, the same contract the teacher's Table
// makes for its Insert/Delete methods.
type Map struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	span int32

	// regions is sorted per region.Compare and is the single source of
	// truth; tree and events are regenerated from it wholesale on every
	// mutation rather than patched incrementally.
	regions []region.Region

	tree   *tree.Tree
	events []stream.Event
}

// New returns an empty Map spanning [0, span) bytes.
func New(span int32) *Map {
	m := &Map{span: span}
	m.rebuild()
	return m
}

// FromEntries returns a Map spanning [0, span) bytes loaded with entries.
// An entry with an out-of-range offset, length or address always fails
// the whole batch with ErrInvalidArgument, since that class of fault is a
// programmer bug rather than a reportable load outcome. An entry that
// structurally conflicts with an earlier one in the batch is skipped
// unless Strict is set, in which case the first conflict fails the whole
// batch with ErrLoadRejected.
func FromEntries(span int32, entries []Region) (*Map, error) {
	m := New(span)

	for _, e := range entries {
		switch result := m.AddRegion(e); result {
		case Okay:
			// continue
		case InvalidValue:
			return nil, errors.Wrapf(ErrInvalidArgument, "entry %s", e)
		default:
			if Strict {
				return nil, errors.Wrapf(ErrLoadRejected, "entry %s: %s", e, result)
			}
		}
	}

	return m, nil
}

// Span returns the size in bytes of the file this Map describes.
func (m *Map) Span() int32 {
	return m.span
}

// Entries returns the authoritative region list in ascending-offset
// order. The returned slice must not be mutated.
func (m *Map) Entries() []Region {
	return m.regions
}

// AddRegion inserts r into the map. It fails with InvalidValue for an
// out-of-range offset, length or address; with OverlapFloating if r
// shares its start offset with an existing floating-length region; with
// OverlapExisting if r exactly duplicates an existing region's (offset,
// length); and with StraddleExisting if r partially overlaps an existing
// region across either edge instead of nesting inside, enclosing, or
// sharing a start with it.
func (m *Map) AddRegion(r Region) AddResult {
	if !m.validArgument(r) {
		return InvalidValue
	}

	pos := sort.Search(len(m.regions), func(i int) bool {
		return region.Compare(m.regions[i], r) >= 0
	})

	if result := m.checkPlacement(r, pos); result != Okay {
		return result
	}

	m.regions = append(m.regions, Region{})
	copy(m.regions[pos+1:], m.regions[pos:])
	m.regions[pos] = r

	m.rebuild()

	return Okay
}

// EditRegion replaces the address and IsRelative of the region keyed by
// (offset, length) with those from replacement; offset and length cannot
// change this way (RemoveRegion and AddRegion handle resizing). old
// identifies a floating-length region by length == FloatingLen.
//
// found reports whether a region matched old; a false found is a
// non-fatal miss, not an argument fault, and result is meaningless in
// that case. When found is true but replacement's offset or length
// differs from the matched region's, result is InvalidValue and the map
// is left unmodified.
func (m *Map) EditRegion(old Region, replacement Region) (result AddResult, found bool) {
	idx := m.indexOf(old)
	if idx < 0 {
		return Okay, false
	}

	saved := m.regions[idx]
	if replacement.Offset != saved.Offset || replacement.Length != saved.Length {
		return InvalidValue, true
	}

	if !m.validArgument(replacement) {
		return InvalidValue, true
	}

	m.regions[idx] = replacement
	m.rebuild()

	return Okay, true
}

// RemoveRegion deletes the region keyed by (offset, length), reporting
// whether one was found. A floating-length region is identified by
// length == FloatingLen.
func (m *Map) RemoveRegion(offset, length int32) bool {
	idx := m.indexOf(Region{Offset: offset, Length: length})
	if idx < 0 {
		return false
	}

	m.regions = append(m.regions[:idx], m.regions[idx+1:]...)
	m.rebuild()

	return true
}

// RegionsAt returns every region starting exactly at offset, in stored
// (region-list) order. It does not return regions that merely contain
// offset without starting there; use OffsetToAddress or the tree for
// containment queries.
func (m *Map) RegionsAt(offset int32) []Region {
	var out []Region

	for _, r := range m.regions {
		if r.Offset == offset {
			out = append(out, r)
		}
	}

	return out
}

// OffsetToAddress returns the CPU address in effect at offset, or
// NonAddr if no region contains it or the innermost region containing it
// has no address.
func (m *Map) OffsetToAddress(offset int32) int32 {
	if offset < 0 || offset >= m.span {
		return NonAddr
	}

	return m.tree.OffsetToAddress(offset)
}

// AddressToOffset resolves targetAddr as seen from srcOffset's scope: the
// overlay or bank mapping in effect at srcOffset takes priority over an
// ancestor's mapping of the same address range.
func (m *Map) AddressToOffset(srcOffset, targetAddr int32) (int32, bool) {
	if srcOffset < 0 || srcOffset >= m.span {
		return NotFound, false
	}

	return m.tree.AddressToOffset(srcOffset, targetAddr)
}

// IsRangeUnbroken reports whether [offset, offset+length) lies entirely
// within one region with no nested region carving into it, the condition
// a disassembler needs before decoding an instruction that spans more
// than one byte.
func (m *Map) IsRangeUnbroken(offset, length int32) bool {
	if offset < 0 || length <= 0 || offset+length > m.span {
		return false
	}

	return m.tree.IsRangeUnbroken(offset, length)
}

func (m *Map) validArgument(r Region) bool {
	if r.Offset < 0 || r.Offset > OffsetMax || r.Offset >= m.span {
		return false
	}

	if !r.IsFloating() && (r.Length <= 0 || r.End() > m.span) {
		return false
	}

	if r.HasAddress() && (r.Address < 0 || r.Address > AddrMax) {
		return false
	}

	return true
}

// checkPlacement validates r against its would-be neighbors in the
// sorted list at index pos, without mutating anything.
func (m *Map) checkPlacement(r Region, pos int) AddResult {
	if pos > 0 {
		prev := m.regions[pos-1]
		if prev.Offset == r.Offset && (prev.IsFloating() || r.IsFloating()) {
			return OverlapFloating
		}
	}

	if enclosing := m.enclosingAt(r, pos); enclosing != nil && !r.IsFloating() && r.End() > enclosing.End() {
		return StraddleExisting
	}

	for i := pos; i < len(m.regions); i++ {
		next := m.regions[i]
		if !r.IsFloating() && next.Offset >= r.End() {
			break
		}

		if next.Offset == r.Offset {
			if r.IsFloating() || next.IsFloating() {
				return OverlapFloating
			}
			if next.Length == r.Length {
				return OverlapExisting
			}
			continue
		}

		if r.IsFloating() {
			break
		}

		if next.Offset < r.End() && next.End() > r.End() {
			return StraddleExisting
		}
	}

	return Okay
}

// enclosingAt returns the tightest already-present region that would
// contain r once inserted at pos, or nil at top level.
func (m *Map) enclosingAt(r Region, pos int) *Region {
	var best *Region

	for i := pos - 1; i >= 0; i-- {
		cand := m.regions[i]
		if cand.IsFloating() {
			continue
		}

		if cand.Offset <= r.Offset && cand.End() > r.Offset {
			if best == nil || cand.Offset > best.Offset {
				best = &m.regions[i]
			}
		}
	}

	return best
}

func (m *Map) indexOf(key Region) int {
	for i, r := range m.regions {
		if r.Offset == key.Offset {
			if (r.IsFloating() && key.IsFloating()) || r.Length == key.Length {
				return i
			}
		}
	}

	return -1
}

// rebuild regenerates the tree and change-stream views from the
// authoritative region list. It panics on an internal invariant breach,
// the one class of error this package treats as unrecoverable since it
// means rebuild produced state that contradicts the list it was built
// from.
func (m *Map) rebuild() {
	m.tree = tree.Build(m.regions, m.span)
	m.events = stream.Build(m.tree)

	if err := validate.Check(validate.Snapshot{
		Span:    m.span,
		Regions: m.regions,
		Tree:    m.tree,
		Stream:  m.events,
	}); err != nil {
		panic(errors.Wrap(err, "addrmap: internal invariant breach after rebuild"))
	}

	logRebuild(len(m.regions), m.span)
}
