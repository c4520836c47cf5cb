// Package llrb implement a self-balancing version of binary-tree,
// called, LLRB (Left Leaning Red Black), combining the 2-3 algorithm
// from Robert Sedgewick.
//
//   * Ordered Set of unique values and ordered Map of key,value pairs.
//   * Both containers share one generic tree engine, parameterized by
//     a key projection and a total order comparator.
//   * Search, insert and delete in O(log n), ascending iteration.
//   * Entry API for maps, find-or-insert with a single descent.
//
// Reads and writes must be serialized by the caller; the tree must not
// be mutated while an iterator or a pending entry derived from it is
// alive.
package llrb
