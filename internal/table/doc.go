// Package table is the presentation core: one deterministic sort/export
// pipeline behind every table-producing command.
//
// Rows are sorted exactly once per invocation — by an operator-supplied
// compact directive ("2,1d,4") or a deterministic default policy — and the
// identical ordered sequence is then fed to each requested facet: the
// interactive console table, a CSV stream, and a JSON stream. Because all
// facets share the sorted slice and one renderer interface, row order is
// byte-identical across targets by construction.
//
// When any facet streams to stdout the invocation is console-only: the
// interactive table, summaries, and confirmations are suppressed entirely
// so pipelines receive exactly one machine-readable stream. Sorting issues
// never fail a render — a bad directive token is dropped with a stderr
// diagnostic and an uncoercible cell degrades to case-folded text. A
// display glitch must never stand between an operator and their data.
package table
