// SPDX-License-Identifier: MIT

// Package distance turns a textual list of city-to-city distances into a
// complete, symmetric, immutable distance table.
//
// Input format (one edge per line, whitespace-separated tokens):
//
//	London to Dublin = 464
//	London to Belfast = 518
//	Dublin to Belfast = 141
//
// Pipeline:
//
//	ParseEdges (io.Reader) → []Edge → Build → *Table (validated)
//
// City identifiers are dense integers in [0, N) assigned in first-seen order
// while scanning the edges (endpoint A before endpoint B, line by line).
// Both directions of every edge are stored; a repeated pair silently
// overwrites the earlier distance (last one wins).
//
// After Build returns, a Table is read-only and safe to share between any
// number of readers. Leg is the unchecked accessor intended for search hot
// loops; At is the bounds-checked accessor for everything else.
//
// Complexity:
//   - ParseEdges: O(L) for L input bytes.
//   - Build:      O(E + N²) for E edges and N cities (N² for Validate).
//   - Leg/At:     O(1).
package distance
