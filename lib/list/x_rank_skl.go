package list

import (
	"sync"

	"github.com/onezeroyl/DataStructure/lib/infra"
)

var (
	_ RankSkipList[uint8, uint8] = (*xRankSkl[uint8, uint8])(nil)
)

// A rank-indexed implementation of skip-list.
// @field head A sentinel node with sklMaxLevel lanes and no element.
// The head.levels()[0].forward() is the first data node of skip-list.
// Every lane span of the head below the active levels counts the jump to
// its forward node; the rank of any data node is the sum of lane spans
// walked from the head down to it on the data lane.
// @field tail Points the skip-list tail data node.
type xRankSkl[K infra.OrderedKey, V comparable] struct {
	kcmp    infra.OrderedKeyComparator[K]
	vcmp    SklValComparator[V]
	rand    SklRand
	pool    *sync.Pool
	head    *xRankSklNode[K, V]
	tail    *xRankSklNode[K, V]
	nodeLen int64 // skip-list's node count.
	levels  int32 // skip-list's max active level, >= 1.
}

// loadAux is to load auxiliary array for traversal.
func (skl *xRankSkl[K, V]) loadAux() []*xRankSklNode[K, V] {
	aux, ok := skl.pool.Get().([]*xRankSklNode[K, V])
	if /* dead code */ !ok {
		panic("[x-rank-skl] load unknown traverse elements from pool")
	}
	return aux
}

// putAux is to recycle auxiliary array after traversal.
func (skl *xRankSkl[K, V]) putAux(aux []*xRankSklNode[K, V]) {
	for i := 0; i < sklMaxLevel; i++ {
		aux[i] = nil
	}
	skl.pool.Put(aux)
}

// lessThan is the strict walk predicate shared by the insert, remove and
// load positioning descents: forward node strictly precedes (key, val) in
// (key asc, val asc) order.
func (skl *xRankSkl[K, V]) lessThan(node *xRankSklNode[K, V], key K, val V) bool {
	res := skl.kcmp(node.Element().Key(), key)
	return res < 0 || (res == 0 && skl.vcmp(node.Element().Val(), val) < 0)
}

func (skl *xRankSkl[K, V]) matches(node *xRankSklNode[K, V], key K, val V) bool {
	return skl.kcmp(node.Element().Key(), key) == 0 && skl.vcmp(node.Element().Val(), val) == 0
}

func (skl *xRankSkl[K, V]) Levels() int32 {
	return skl.levels
}

func (skl *xRankSkl[K, V]) Len() int64 {
	return skl.nodeLen
}

func (skl *xRankSkl[K, V]) IsEmpty() bool {
	return skl.nodeLen == 0
}

func (skl *xRankSkl[K, V]) Insert(key K, val V) SklElement[K, V] {
	var (
		pred  = skl.head
		aux   = skl.loadAux()
		ranks [sklMaxLevel]int64
	)
	defer func() {
		skl.putAux(aux)
	}()

	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		if /* inherit the running total */ i == skl.levels-1 {
			ranks[i] = 0
		} else {
			ranks[i] = ranks[i+1]
		}
		for /* horizontal */ pred.levels()[i].forward() != nil {
			cur := pred.levels()[i].forward()
			if !skl.lessThan(cur, key, val) {
				break
			}
			ranks[i] += pred.levels()[i].forwardSpan()
			pred = cur
		}
		aux[i] = pred
	}

	lvl := skl.rand(sklMaxLevel, skl.nodeLen)
	if lvl > skl.levels {
		for i := skl.levels; i < lvl; i++ {
			// The head's implicit jump past the end covers every node.
			ranks[i] = 0
			aux[i] = skl.head
			skl.head.levels()[i].setForwardSpan(skl.nodeLen)
		}
		skl.levels = lvl
	}

	newNode := newXRankSklNode(lvl, key, val)
	for i := int32(0); i < lvl; i++ {
		newNode.levels()[i].setForward(aux[i].levels()[i].forward())
		aux[i].levels()[i].setForward(newNode)
		// ranks[0]-ranks[i] is the data lane distance from the lane i
		// predecessor to the new node's slot.
		newNode.levels()[i].setForwardSpan(aux[i].levels()[i].forwardSpan() - (ranks[0] - ranks[i]))
		aux[i].levels()[i].setForwardSpan(ranks[0] - ranks[i] + 1)
	}
	for /* untouched lanes jump one more node now */ i := lvl; i < skl.levels; i++ {
		aux[i].levels()[i].setForwardSpan(aux[i].levels()[i].forwardSpan() + 1)
	}

	if aux[0] == skl.head {
		newNode.setBackward(nil)
	} else {
		newNode.setBackward(aux[0])
	}
	if next := newNode.levels()[0].forward(); next == nil {
		skl.tail = newNode
	} else {
		next.setBackward(newNode)
	}
	skl.nodeLen++
	return newNode.Element()
}

func (skl *xRankSkl[K, V]) Remove(key K, val V) bool {
	var (
		pred = skl.head
		aux  = skl.loadAux()
	)
	defer func() {
		skl.putAux(aux)
	}()

	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		for /* horizontal */ pred.levels()[i].forward() != nil {
			cur := pred.levels()[i].forward()
			if !skl.lessThan(cur, key, val) {
				break
			}
			pred = cur
		}
		aux[i] = pred
	}

	target := aux[0].levels()[0].forward()
	if target == nil || !skl.matches(target, key, val) {
		return false
	}
	skl.removeNode(target, aux)
	target.Free()
	return true
}

// removeNode merges the target's spans into its lane predecessors and will
// reduce the active levels.
func (skl *xRankSkl[K, V]) removeNode(x *xRankSklNode[K, V], aux []*xRankSklNode[K, V]) {
	for i := int32(0); i < skl.levels; i++ {
		if aux[i].levels()[i].forward() == x {
			aux[i].levels()[i].setForwardSpan(aux[i].levels()[i].forwardSpan() + x.levels()[i].forwardSpan() - 1)
			aux[i].levels()[i].setForward(x.levels()[i].forward())
		} else {
			// The lane jumps over x from elsewhere; one fewer node below it.
			aux[i].levels()[i].setForwardSpan(aux[i].levels()[i].forwardSpan() - 1)
		}
	}
	if /* unlink */ next := x.levels()[0].forward(); next != nil {
		next.setBackward(x.backward())
	} else {
		skl.tail = x.backward()
	}
	for /* reduce levels */ skl.levels > 1 && skl.head.levels()[skl.levels-1].forward() == nil {
		skl.levels--
	}
	skl.nodeLen--
}

func (skl *xRankSkl[K, V]) Load(key K, val V) SklElement[K, V] {
	pred := skl.head
	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		for /* horizontal */ pred.levels()[i].forward() != nil {
			cur := pred.levels()[i].forward()
			if !skl.lessThan(cur, key, val) {
				break
			}
			pred = cur
		}
	}
	target := pred.levels()[0].forward()
	if target != nil && skl.matches(target, key, val) {
		return target.Element()
	}
	return nil
}

func (skl *xRankSkl[K, V]) LoadByRank(rank int64) SklElement[K, V] {
	if rank < 1 || rank > skl.nodeLen {
		return nil
	}
	var (
		node      = skl.head
		traversed int64
	)
	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		for /* horizontal */ node.levels()[i].forward() != nil &&
			traversed+node.levels()[i].forwardSpan() <= rank {
			traversed += node.levels()[i].forwardSpan()
			node = node.levels()[i].forward()
		}
		if traversed == rank {
			return node.Element()
		}
	}
	// Unreachable after the range check above.
	return nil
}

// Rank walks with a less-or-equal tie-break on the value at equal keys,
// unlike the strict walks elsewhere. With unique (key, val) pairs the
// results coincide; the looser predicate only changes which node a descent
// rests on among key duplicates. Kept as-is deliberately.
func (skl *xRankSkl[K, V]) Rank(key K, val V) int64 {
	var (
		node = skl.head
		rank int64
	)
	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		for /* horizontal */ node.levels()[i].forward() != nil {
			cur := node.levels()[i].forward()
			res := skl.kcmp(cur.Element().Key(), key)
			if res > 0 || (res == 0 && skl.vcmp(cur.Element().Val(), val) > 0) {
				break
			}
			rank += node.levels()[i].forwardSpan()
			node = cur
		}
		if node != skl.head && skl.matches(node, key, val) {
			return rank
		}
	}
	return 0
}

func (skl *xRankSkl[K, V]) Foreach(action func(i int64, item SklIterationItem[K, V]) bool) {
	var (
		x    = skl.head.levels()[0].forward()
		i    int64
		item = &xSklIter[K, V]{}
	)
	for x != nil {
		next := x.levels()[0].forward()
		node := x
		item.keyFn = node.element.Key
		item.valFn = node.element.Val
		item.nodeLevelFn = func() uint32 {
			return uint32(len(node.levels()))
		}
		rank := i + 1
		item.rankFn = func() int64 {
			return rank
		}
		if !action(i, item) {
			break
		}
		i++
		x = next
	}
}

func (skl *xRankSkl[K, V]) PeekHead() SklElement[K, V] {
	if first := skl.head.levels()[0].forward(); first != nil {
		return first.Element()
	}
	return nil
}

func (skl *xRankSkl[K, V]) PeekTail() SklElement[K, V] {
	if skl.tail != nil {
		return skl.tail.Element()
	}
	return nil
}

func (skl *xRankSkl[K, V]) Release() {
	var (
		x, next *xRankSklNode[K, V]
		idx     int
	)
	x = skl.head.levels()[0].forward()
	for x != nil {
		next = x.levels()[0].forward()
		x.Free()
		x = next
	}
	for idx = 0; idx < sklMaxLevel; idx++ {
		skl.head.levels()[idx].setForward(nil)
		skl.head.levels()[idx].setForwardSpan(0)
	}
	skl.tail = nil
	skl.levels = 1
	skl.nodeLen = 0
}

type XRankSklOption[K infra.OrderedKey, V comparable] func(*xRankSkl[K, V])

func WithSklRandLevelGen[K infra.OrderedKey, V comparable](gen SklRand) XRankSklOption[K, V] {
	return func(skl *xRankSkl[K, V]) {
		skl.rand = gen
	}
}

func WithXRankSklKeyComparator[K infra.OrderedKey, V comparable](kcmp infra.OrderedKeyComparator[K]) XRankSklOption[K, V] {
	return func(skl *xRankSkl[K, V]) {
		skl.kcmp = kcmp
	}
}

// NewXRankSkl builds an empty rank-indexed skip-list. The value comparator
// is mandatory, it defines the tie order among equal keys. The key order
// defaults to the natural one and both the key comparator and the level
// generator are replaceable through options.
func NewXRankSkl[K infra.OrderedKey, V comparable](vcmp SklValComparator[V], opts ...XRankSklOption[K, V]) RankSkipList[K, V] {
	if vcmp == nil {
		panic("[x-rank-skl] missing value comparator")
	}
	skl := &xRankSkl[K, V]{
		kcmp: infra.OrderedKeyCompare[K],
		vcmp: vcmp,
		rand: randomLevel,
		pool: &sync.Pool{
			New: func() any {
				return make([]*xRankSklNode[K, V], sklMaxLevel)
			},
		},
		head:   newXRankSklHead[K, V](),
		levels: 1,
	}
	for _, o := range opts {
		o(skl)
	}
	return skl
}
