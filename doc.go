// Package orderedset provides Set, an ordered set of unique keys held in an unbalanced binary
// search tree with parent links, and cursors that walk it in either direction.
//
// The tree is never rebalanced. Lookups, inserts and erasures cost O(height), which is O(log n)
// for random insertion order and O(n) for sorted insertion. The internal/btreeset package and
// cmd/orderedset compare it against balanced btrees.
package orderedset
