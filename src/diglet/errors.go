// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import "errors"

// Sentinel errors for the diglet package.
var (
	// ErrEmptyPool is returned when a resolver pool is constructed from
	// an empty resolver list, or when a [Digger] is built without any
	// resolvers. It is always surfaced before the first query.
	ErrEmptyPool = errors.New("diglet: resolver pool is empty")

	// ErrInternalPanic is returned when an internal panic is recovered
	// during query execution.
	ErrInternalPanic = errors.New("diglet: internal panic recovered")

	// ErrUnknownFormat is returned by [Write] when asked to render an
	// output format it does not know.
	ErrUnknownFormat = errors.New("diglet: unknown output format")
)
