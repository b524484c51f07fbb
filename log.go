// Copyright (c) 2025 The addrmap authors
// SPDX-License-Identifier: MIT

package addrmap

import "github.com/grailbio/base/log"

// rebuild logs at Debug level so a caller tracing down a slow bulk load
// can turn verbosity up without recompiling; nothing in this package logs
// above Debug, since a mapping conflict is reported through AddResult or
// an error, never by the logger.
func logRebuild(regions int, span int32) {
	log.Debug.Printf("addrmap: rebuilt tree and change stream: %d regions, span %#x", regions, span)
}
