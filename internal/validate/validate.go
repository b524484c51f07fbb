// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

// Package validate cross-checks the region list, the tree and the change
// stream for internal consistency after every regeneration. It collects
// every violation it finds in one pass rather than failing fast, so a
// fatal-breach report carries enough context to reconstruct the offending
// state.
package validate

import (
	"fmt"

	"github.com/grailbio/base/sync/multierror"

	"github.com/disasm6502/addrmap/internal/region"
	"github.com/disasm6502/addrmap/internal/stream"
	"github.com/disasm6502/addrmap/internal/tree"
)

// Snapshot bundles the three views the validator cross-checks.
type Snapshot struct {
	Span    int32
	Regions []region.Region
	Tree    *tree.Tree
	Stream  []stream.Event
}

// Check runs every invariant and returns their aggregated violations, or
// nil if the snapshot is consistent.
func Check(s Snapshot) error {
	errs := multierror.NewMultiError(0)

	for _, e := range checkOrdering(s.Regions) {
		errs.Add(e)
	}
	for _, e := range checkContainment(s.Regions) {
		errs.Add(e)
	}
	for _, e := range checkBounds(s.Regions, s.Span) {
		errs.Add(e)
	}
	for _, e := range checkTree(s.Tree, s.Regions, s.Span) {
		errs.Add(e)
	}
	for _, e := range checkStream(s.Stream, s.Tree, len(s.Regions)) {
		errs.Add(e)
	}

	return errs.ErrorOrNil()
}

// checkOrdering verifies invariant 1 (no duplicate (offset,length)),
// invariant 2 (no same-offset floating collision) and the sort order
// region.Compare defines.
func checkOrdering(regions []region.Region) (errs []error) {
	for i := 1; i < len(regions); i++ {
		a, b := regions[i-1], regions[i]
		if region.Compare(a, b) > 0 {
			errs = append(errs, fmt.Errorf("region list not sorted at index %d: %s before %s", i, a, b))
		}

		if a.Offset == b.Offset {
			if a.Key() == b.Key() {
				errs = append(errs, fmt.Errorf("duplicate region %s", a))
			}

			if a.IsFloating() || b.IsFloating() {
				errs = append(errs, fmt.Errorf("floating collision at offset %#x: %s and %s", a.Offset, a, b))
			}
		}
	}

	return errs
}

// checkContainment verifies invariant 3: any two regions are either
// disjoint or one fully contains the other, never a partial straddle.
func checkContainment(regions []region.Region) (errs []error) {
	for i, a := range regions {
		if a.IsFloating() {
			continue
		}

		for j := i + 1; j < len(regions); j++ {
			b := regions[j]
			if b.Offset >= a.End() {
				break
			}

			if b.IsFloating() {
				continue
			}

			if b.End() > a.End() {
				errs = append(errs, fmt.Errorf("straddling regions %s and %s", a, b))
			}
		}
	}

	return errs
}

// checkBounds verifies invariant 4: every region lies within [0, span).
func checkBounds(regions []region.Region, span int32) (errs []error) {
	for _, r := range regions {
		if r.Offset < 0 || r.Offset >= span {
			errs = append(errs, fmt.Errorf("region %s starts outside [0,%#x)", r, span))
		}

		if !r.IsFloating() && (r.Length <= 0 || r.End() > span) {
			errs = append(errs, fmt.Errorf("region %s extends outside [0,%#x)", r, span))
		}
	}

	return errs
}

// checkTree verifies invariants 5, 6 and 7: the synthetic root spans the
// file, every region appears exactly once, children are ordered and
// non-overlapping, and a resolved floating node fits strictly within its
// parent without overlapping siblings.
func checkTree(t *tree.Tree, regions []region.Region, span int32) (errs []error) {
	root := t.Nodes[t.Root]
	if root.Region.Offset != 0 || root.Region.Length != span || root.Region.HasAddress() {
		errs = append(errs, fmt.Errorf("tree root does not span [0,%#x) as NON_ADDR", span))
	}

	seen := make(map[[2]int32]int)
	var walk func(idx int)
	walk = func(idx int) {
		n := t.Nodes[idx]

		if idx != t.Root {
			key := [2]int32{n.Region.Offset, n.Region.Length}
			if n.WasFloating {
				key[1] = region.FloatingLen
			}

			seen[key]++

			parent := t.Nodes[n.Parent].Region
			if n.Region.Offset < parent.Offset || n.Region.End() > parent.End() {
				errs = append(errs, fmt.Errorf("node %s does not fit strictly within its parent", n.Region))
			}
		}

		prevEnd := n.Region.Offset
		for i, childIdx := range n.Children {
			c := t.Nodes[childIdx].Region
			if i > 0 && c.Offset < prevEnd {
				errs = append(errs, fmt.Errorf("children of %s are not ordered/non-overlapping", n.Region))
			}

			prevEnd = c.End()
			walk(childIdx)
		}
	}
	walk(t.Root)

	for _, r := range regions {
		key := r.Key()
		if seen[key] != 1 {
			errs = append(errs, fmt.Errorf("region %s appears %d times in the tree, want 1", r, seen[key]))
		}
	}

	return errs
}

// checkStream verifies invariant 8: event cardinality and proper nesting.
func checkStream(events []stream.Event, t *tree.Tree, regionCount int) (errs []error) {
	root := t.Nodes[t.Root]
	fillers, cursor := 0, root.Region.Offset
	for _, childIdx := range root.Children {
		if c := t.Nodes[childIdx].Region; c.Offset > cursor {
			fillers++
		}
		cursor = t.Nodes[childIdx].Region.End()
	}
	if cursor < root.Region.End() {
		fillers++
	}
	if want := 2 * (regionCount + fillers); len(events) != want {
		errs = append(errs, fmt.Errorf("change stream has %d events, want %d", len(events), want))
	}

	var stack []region.Region

	for _, e := range events {
		switch e.Kind {
		case stream.Start:
			stack = append(stack, e.Region)
		case stream.End:
			if len(stack) == 0 {
				errs = append(errs, fmt.Errorf("unmatched END event at offset %#x", e.Offset))
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.Key() != e.Region.Key() {
				errs = append(errs, fmt.Errorf("END event at offset %#x does not match most recent START", e.Offset))
			}
		}
	}

	if len(stack) != 0 {
		errs = append(errs, fmt.Errorf("%d unmatched START event(s) left open", len(stack)))
	}

	return errs
}

// Equal reports whether two region lists are semantically identical:
// same length, same regions in the same order. It's the comparison tests
// use for round-tripping a map through Entries/FromEntries.
func Equal(a, b []region.Region) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
