// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import "github.com/disasm6502/addrmap/internal/stream"

// EventKind distinguishes a region's start from its end in the change
// stream returned by ChangeStream and walked by Walk.
type EventKind = stream.Kind

const (
	EventStart = stream.Start
	EventEnd   = stream.End
)

// Event is one boundary in the linear change stream: a region starting or
// ending, in ascending offset order, including synthesized NON_ADDR
// fillers covering every gap between top-level regions.
type Event = stream.Event

// ChangeStream returns the full, precomputed linear start/end event
// sequence for the map. The returned slice must not be mutated.
func (m *Map) ChangeStream() []Event {
	return m.events
}

// Walk calls fn once per change-stream event in order, stopping early if
// fn returns false.
func (m *Map) Walk(fn func(Event) bool) {
	for _, e := range m.events {
		if !fn(e) {
			return
		}
	}
}
