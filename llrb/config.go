package llrb

import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"

// average in-memory footprint of a node assumed while deriving the
// default capacity from free system memory.
const avgnodesize = int64(64)

// Defaultsettings for llrb containers.
//
// "iterpool.size": int64(100)
//      Maximum number of iterators kept pooled for reuse. Each Iter(),
//      Keys() or Values() call acquires an instance from the pool.
//
// "capacity" (int64)
//      Maximum number of entries the tree shall hold. Inserting beyond
//      capacity fails with api.ErrorOutofMemory, leaving the tree
//      untouched. Default is derived from free system memory assuming
//      <avgnodesize> bytes per entry.
//
// "validate" (bool, default: false)
//      If true, walk the full tree checking llrb invariants before and
//      after every mutation. Violations panic, there is no recovery
//      once the balancing contract is broken. Meant for debugging and
//      tests, never for release-mode hot paths.
//
// "allocator" (string, default: "runtime")
//      Place holder. Nodes are allocated and reclaimed by the go
//      runtime; item ownership is handled through Setrelease().
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free) / avgnodesize
	if capacity <= 0 {
		capacity = 1024
	}
	setts := s.Settings{
		"iterpool.size": int64(100),
		"capacity":      capacity,
		"validate":      false,
		"allocator":     "runtime",
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
