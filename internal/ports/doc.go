// Package ports defines the canonical port identifier for the gateway
// appliance and everything that produces one: the token canonicalizer, the
// total-order comparator, and the specification resolver that expands
// operator shorthand (single tokens, ranges, wildcards, CSV port files)
// into an ordered, duplicate-free port set.
//
// A gateway port is addressed by a board number and a slot on that board.
// Operators write the same port many ways — "2B", "2.02", or just "2" for
// a single-slot board — and all surface forms normalize to one Port value.
// Resolution is purely syntactic: the resolver never talks to a device.
// The wildcard ("*" / "all") expands an inventory injected by the caller,
// keeping this package independently testable.
package ports
