// Package route finds the shortest or longest open route through every city
// of a distance table by exhaustive depth-first search.
//
// A route visits each city exactly once and does not return to its start;
// its length is the sum of its N−1 legs. The search enumerates every
// permutation as a tree whose nodes are (committed path, remaining set)
// pairs. Root = (empty, all cities); a node with one remaining city is a
// leaf's parent and completes a route on its next step.
//
// One engine serves both objectives:
//
//	Minimize  seed = distance.Infinity, better = strict <, prune before leaf
//	Maximize  seed = 0,                 better = strict >, never prune
//
// Before-leaf pruning skips a branch whose partial length is already not
// strictly better than the best complete route. Legs are non-negative, so a
// minimization prefix can only grow; pruning changes speed, never results.
// The same argument does not hold for maximization, which is why pruning is
// rejected there (ErrPruningUnsupported).
//
// The remaining-city set is a single bitset mutated in place and restored on
// backtrack, so the hot path does not allocate.
//
// Complexity: O(N!) leaves in the worst case; O(N) memory.
// Intended for N ≲ 10.
package route
