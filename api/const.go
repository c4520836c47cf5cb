package api

import "errors"

// ErrorOutofMemory operation cannot succeed because the tree has
// reached its configured capacity. The tree is left untouched.
var ErrorOutofMemory = errors.New("outofmemory")

// ErrorEntryConsumed operation cannot succeed because a vacant entry
// accepts exactly one insert, and this handle was already consumed.
var ErrorEntryConsumed = errors.New("entryConsumed")

// ErrorDeadTree operation cannot succeed because the tree instance
// was already destroyed.
var ErrorDeadTree = errors.New("deadTree")
