// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareOrdersByOffsetThenDescendingLength(t *testing.T) {
	a := Region{Offset: 0x10, Length: 0x20}
	b := Region{Offset: 0x10, Length: 0x10}
	c := Region{Offset: 0x20, Length: 0x5}

	assert.Negative(t, Compare(a, b), "larger region at the same offset sorts first")
	assert.Negative(t, Compare(b, c))
	assert.Zero(t, Compare(a, a))
}

func TestCompareFloatingSortsLastAtTiedOffset(t *testing.T) {
	floating := Region{Offset: 0x10, Length: FloatingLen}
	resolved := Region{Offset: 0x10, Length: 0x10}

	assert.Positive(t, Compare(floating, resolved))
	assert.Negative(t, Compare(resolved, floating))
}

func TestRegionPredicates(t *testing.T) {
	r := Region{Offset: 0x10, Length: 0x10, Address: 0x8000}
	assert.False(t, r.IsFloating())
	assert.True(t, r.HasAddress())
	assert.EqualValues(t, 0x20, r.End())

	floating := Region{Offset: 0x10, Length: FloatingLen, Address: NonAddr}
	assert.True(t, floating.IsFloating())
	assert.False(t, floating.HasAddress())
}
