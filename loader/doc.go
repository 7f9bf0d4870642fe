// SPDX-License-Identifier: MIT

// Package loader reads graphs from files for the CLI and tests.
//
// Two formats are supported:
//
// YAML document:
//
//	vertices: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C}          # weight defaults to 1
//
// Edge list (line oriented):
//
//	A B C          <- first non-blank line declares the vertices
//	A B 4          <- "u v [w]"
//	B C
//	fim            <- optional terminator ("fim" or "end", any case)
//
// Lines starting with '#' are comments. Every edge endpoint must be
// declared, otherwise loading fails with core.ErrMissingVertex. A line with
// fewer than two tokens fails with ErrInvalidLine.
//
// Self-loops such as "A A" are rejected with core.ErrLoopNotAllowed, in both
// formats. The line-oriented tool this format comes from accepted them and
// counted the loop twice in the vertex degree; here the graph model is
// simple apart from parallel edges, so such input fails to load instead.
//
// An unparsable or non-finite weight is replaced by the default weight 1.
// The replacement is never silent: each one is reported as a Substitution
// so the caller can log or reject it.
//
// Both formats are decoded into the same Document and checked with
// validator struct tags before any vertex is inserted.
package loader
