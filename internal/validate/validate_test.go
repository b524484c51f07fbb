// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disasm6502/addrmap/internal/region"
	"github.com/disasm6502/addrmap/internal/stream"
	"github.com/disasm6502/addrmap/internal/tree"
)

func snapshotFor(regions []region.Region, span int32) Snapshot {
	tr := tree.Build(regions, span)
	return Snapshot{
		Span:    span,
		Regions: regions,
		Tree:    tr,
		Stream:  stream.Build(tr),
	}
}

func TestCheckAcceptsConsistentSnapshot(t *testing.T) {
	regions := []region.Region{
		{Offset: 0x0000, Length: 0x2000, Address: 0x8000},
		{Offset: 0x2000, Length: 0x2000, Address: 0x8000},
		{Offset: 0x2100, Length: 0x200, Address: 0xE100},
	}

	err := Check(snapshotFor(regions, 0x4000))
	assert.NoError(t, err)
}

func TestCheckCatchesDuplicateRegion(t *testing.T) {
	regions := []region.Region{
		{Offset: 0x10, Length: 0x10, Address: 0x100},
		{Offset: 0x10, Length: 0x10, Address: 0x100},
	}

	err := checkErrorFor(t, regions, 0x100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCheckCatchesOutOfBoundsRegion(t *testing.T) {
	regions := []region.Region{
		{Offset: 0x10, Length: 0x200, Address: 0x100},
	}

	err := checkErrorFor(t, regions, 0x100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside")
}

// checkErrorFor runs only the pure-data checks; it does not build a tree,
// since a deliberately invalid region list would make Build's own
// assumptions (already-sorted, in-bounds input) meaningless to test here.
func checkErrorFor(t *testing.T, regions []region.Region, span int32) error {
	t.Helper()

	var errs []error
	errs = append(errs, checkOrdering(regions)...)
	errs = append(errs, checkContainment(regions)...)
	errs = append(errs, checkBounds(regions, span)...)

	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

func TestEqual(t *testing.T) {
	a := []region.Region{{Offset: 0, Length: 1, Address: 2}}
	b := []region.Region{{Offset: 0, Length: 1, Address: 2}}
	c := []region.Region{{Offset: 0, Length: 1, Address: 3}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, nil))
}
