// Package ident hands out process-wide unique identifiers.
package ident

import "sync/atomic"

var last atomic.Uint64

// Next returns the next identifier.
// Identifiers start from 1 and are never reused within the process.
func Next() uint64 { return last.Add(1) }
