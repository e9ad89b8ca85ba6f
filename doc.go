// Package salesman solves the open travelling-salesman puzzle: given the
// distance between every pair of named cities, find the shortest and the
// longest route that visits each city exactly once without returning to
// the start.
//
// Subpackages:
//
//	distance/     — parse "<A> to <B> = <n>" lines into a complete, symmetric table
//	route/        — depth-first permutation search (Minimize with pruning, Maximize)
//	survey/       — unpruned enumeration of every route with length statistics
//	cmd/salesman/ — command that reads input.txt and prints MIN and MAX
//
// Quick example:
//
//	tbl, err := distance.Load("input.txt")
//	if err != nil { ... }
//	minLen, maxLen, err := route.MinMax(tbl)
//
// Exhaustive by construction: intended for about ten cities or fewer.
package salesman
