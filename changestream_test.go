// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeStreamAndWalk(t *testing.T) {
	m := New(0x8000)
	require.Equal(t, Okay, m.AddRegion(Region{Offset: 0x1000, Length: 0x100, Address: 0x2000}))

	events := m.ChangeStream()
	require.Len(t, events, 6)

	var walked []Event
	m.Walk(func(e Event) bool {
		walked = append(walked, e)
		return true
	})
	assert.Equal(t, events, walked)

	var stopped []Event
	m.Walk(func(e Event) bool {
		stopped = append(stopped, e)
		return len(stopped) < 2
	})
	assert.Len(t, stopped, 2)
}
