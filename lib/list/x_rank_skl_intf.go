package list

import (
	"github.com/onezeroyl/DataStructure/lib/infra"
)

const (
	sklMaxLevel    = 32   // level 0 is the data node level.
	sklProbability = 0.25 // P = 1/4, a skip list node element has 1/4 probability to have a level
)

// SklElement is the read-only projection of one stored (key, value) pair.
type SklElement[K infra.OrderedKey, V comparable] interface {
	Key() K
	Val() V
}

// SklIterationItem decorates an element with its node placement metadata
// during a Foreach walk.
type SklIterationItem[K infra.OrderedKey, V comparable] interface {
	SklElement[K, V]
	NodeLevel() uint32
	Rank() int64
}

// SklValComparator must define a total order over the value type.
// Assume i is the new value.
//  1. i == j, return 0
//  2. i > j, return a positive number, turn to right part.
//  3. i < j, return a negative number, turn to left part.
type SklValComparator[V comparable] func(i, j V) int64

// SklRand decides the level count of a new node. Injected so that level
// generation is deterministic under test.
type SklRand func(maxLevel int32, currentElements int64) int32

// RankSkipList is an ordered multi-level linked structure over (key, value)
// pairs with per-level span counters, so it answers positional queries in
// expected O(log n) on top of the classic insert/remove/load operations.
//
// Ordering is by key ascending, then value ascending at equal keys.
// All operations are synchronous and run to completion; the structure holds
// no internal lock and assumes a single logical owner (callers that share
// one instance across goroutines must serialize access themselves).
type RankSkipList[K infra.OrderedKey, V comparable] interface {
	// Levels reports the current max active level, at least 1.
	Levels() int32
	// Len reports the stored pair count.
	Len() int64
	IsEmpty() bool
	// Insert adds a new (key, val) pair and reports its element.
	// It never fails and never deduplicates: inserting a pair equal to an
	// existing one creates a second, indistinguishable entry. Callers that
	// want set semantics must Remove the old pair first.
	Insert(key K, val V) SklElement[K, V]
	// Remove unlinks the pair matching (key, val) exactly.
	// It reports false and mutates nothing when no such pair exists.
	Remove(key K, val V) bool
	// Load reports the element matching (key, val) exactly, or nil.
	Load(key K, val V) SklElement[K, V]
	// LoadByRank reports the element at the 1-based rank, or nil when
	// rank is outside [1, Len()].
	LoadByRank(rank int64) SklElement[K, V]
	// Rank reports the 1-based rank of the pair matching (key, val)
	// exactly, or 0 when no such pair exists.
	Rank(key K, val V) int64
	// Foreach walks the pairs in ascending order until action returns false.
	Foreach(action func(i int64, item SklIterationItem[K, V]) bool)
	PeekHead() SklElement[K, V]
	PeekTail() SklElement[K, V]
	// Release resets the structure to its empty state. It remains usable.
	Release()
}

// OrdMapSkipList is the plain key to value skip list, an ordered map without
// rank metadata. Put replaces the value on key collision.
type OrdMapSkipList[K infra.OrderedKey, V any] interface {
	Levels() int32
	Len() int64
	Put(key K, val V)
	Load(key K) (V, bool)
	Remove(key K) (V, bool)
	Foreach(action func(i int64, key K, val V) bool)
	Release()
}
