// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disasm6502/addrmap/internal/region"
	"github.com/disasm6502/addrmap/internal/tree"
)

func TestBuildSynthesizesTopLevelFillers(t *testing.T) {
	regions := []region.Region{
		{Offset: 0x1000, Length: 0x100, Address: 0x2000},
	}

	tr := tree.Build(regions, 0x8000)
	events := Build(tr)

	require.Len(t, events, 6)

	assert.Equal(t, Start, events[0].Kind)
	assert.EqualValues(t, 0, events[0].Offset)

	assert.Equal(t, End, events[1].Kind)
	assert.EqualValues(t, 0x1000, events[1].Offset)

	assert.Equal(t, Start, events[2].Kind)
	assert.EqualValues(t, 0x1000, events[2].Offset)
	assert.EqualValues(t, 0x2000, events[2].Address)

	assert.Equal(t, End, events[3].Kind)
	assert.EqualValues(t, 0x1100, events[3].Offset)

	assert.Equal(t, Start, events[4].Kind)
	assert.EqualValues(t, 0x1100, events[4].Offset)

	assert.Equal(t, End, events[5].Kind)
	assert.EqualValues(t, 0x8000, events[5].Offset)
}

func TestBuildNestsChildEventsInsideParent(t *testing.T) {
	regions := []region.Region{
		{Offset: 0x0000, Length: 0x2000, Address: 0x8000},
		{Offset: 0x2000, Length: 0x2000, Address: 0x8000},
		{Offset: 0x2100, Length: 0x200, Address: 0xE100},
	}

	tr := tree.Build(regions, 0x4000)
	events := Build(tr)

	var stack []region.Region
	for _, e := range events {
		switch e.Kind {
		case Start:
			stack = append(stack, e.Region)
		case End:
			require.NotEmpty(t, stack)
			require.Equal(t, stack[len(stack)-1].Key(), e.Region.Key())
			stack = stack[:len(stack)-1]
		}
	}
	assert.Empty(t, stack)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "START", Start.String())
	assert.Equal(t, "END", End.String())
}
