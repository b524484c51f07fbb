// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddResultString(t *testing.T) {
	cases := map[AddResult]string{
		Okay:             "Okay",
		InvalidValue:     "InvalidValue",
		OverlapExisting:  "OverlapExisting",
		OverlapFloating:  "OverlapFloating",
		StraddleExisting: "StraddleExisting",
		AddResult(99):    "AddResult(unknown)",
	}

	for result, want := range cases {
		assert.Equal(t, want, result.String())
	}
}
