package list

import (
	"github.com/onezeroyl/DataStructure/lib/infra"
)

var (
	_ SklElement[uint8, uint8] = (*xSklElement[uint8, uint8])(nil)
)

type xSklElement[K infra.OrderedKey, V comparable] struct {
	key K
	val V
}

func (e *xSklElement[K, V]) Key() K {
	return e.key
}

func (e *xSklElement[K, V]) Val() V {
	return e.val
}

type xSklIter[K infra.OrderedKey, V comparable] struct {
	keyFn       func() K
	valFn       func() V
	nodeLevelFn func() uint32
	rankFn      func() int64
}

func (x *xSklIter[K, V]) Key() K            { return x.keyFn() }
func (x *xSklIter[K, V]) Val() V            { return x.valFn() }
func (x *xSklIter[K, V]) NodeLevel() uint32 { return x.nodeLevelFn() }
func (x *xSklIter[K, V]) Rank() int64       { return x.rankFn() }

// xRankSklIndex is one forward lane of a node.
// The span counts how many data nodes the succ link jumps over, the target
// included. At level 0 it is always 1 while succ is non-nil; the stored
// value is meaningless once succ is nil.
type xRankSklIndex[K infra.OrderedKey, V comparable] struct {
	succ *xRankSklNode[K, V]
	span int64
}

func (idx *xRankSklIndex[K, V]) forward() *xRankSklNode[K, V] {
	if idx == nil {
		return nil
	}
	return idx.succ
}

func (idx *xRankSklIndex[K, V]) setForward(succ *xRankSklNode[K, V]) {
	if idx == nil {
		return
	}
	idx.succ = succ
}

func (idx *xRankSklIndex[K, V]) forwardSpan() int64 {
	if idx == nil {
		return 0
	}
	return idx.span
}

func (idx *xRankSklIndex[K, V]) setForwardSpan(span int64) {
	if idx == nil {
		return
	}
	idx.span = span
}

// The node levels count is decided at creation and immutable afterwards.
// indices[0] links the data lane; higher indices are the express lanes.
type xRankSklNode[K infra.OrderedKey, V comparable] struct {
	indices []*xRankSklIndex[K, V]
	element SklElement[K, V]
	// Works for a backward iteration direction, data lane only.
	pred *xRankSklNode[K, V]
}

func (node *xRankSklNode[K, V]) Element() SklElement[K, V] {
	return node.element
}

func (node *xRankSklNode[K, V]) backward() *xRankSklNode[K, V] {
	return node.pred
}

func (node *xRankSklNode[K, V]) setBackward(pred *xRankSklNode[K, V]) {
	node.pred = pred
}

func (node *xRankSklNode[K, V]) levels() []*xRankSklIndex[K, V] {
	return node.indices
}

func (node *xRankSklNode[K, V]) Free() {
	node.element = nil
	node.pred = nil
	node.indices = nil
}

func newXRankSklNode[K infra.OrderedKey, V comparable](level int32, key K, val V) *xRankSklNode[K, V] {
	node := &xRankSklNode[K, V]{
		element: &xSklElement[K, V]{
			key: key,
			val: val,
		},
		indices: make([]*xRankSklIndex[K, V], level),
	}
	for i := int32(0); i < level; i++ {
		node.indices[i] = &xRankSklIndex[K, V]{}
	}
	return node
}

// The sentinel head owns the max level count of lanes and a zero element.
// Walks never compare against it.
func newXRankSklHead[K infra.OrderedKey, V comparable]() *xRankSklNode[K, V] {
	return newXRankSklNode[K, V](sklMaxLevel, *new(K), *new(V))
}
