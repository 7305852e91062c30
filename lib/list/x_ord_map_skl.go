package list

import (
	"github.com/onezeroyl/DataStructure/lib/infra"
)

var (
	_ OrdMapSkipList[uint8, uint8] = (*xOrdMapSkl[uint8, uint8])(nil)
)

type xOrdMapSklNode[K infra.OrderedKey, V any] struct {
	key      K
	val      V
	forwards []*xOrdMapSklNode[K, V]
}

func newXOrdMapSklNode[K infra.OrderedKey, V any](level int32, key K, val V) *xOrdMapSklNode[K, V] {
	return &xOrdMapSklNode[K, V]{
		key:      key,
		val:      val,
		forwards: make([]*xOrdMapSklNode[K, V], level),
	}
}

// An ordered map implementation of skip-list. One value per key, no rank
// metadata, no backward lane. The trivial sibling of xRankSkl.
// Not safe for concurrent use.
type xOrdMapSkl[K infra.OrderedKey, V any] struct {
	kcmp    infra.OrderedKeyComparator[K]
	rand    SklRand
	head    *xOrdMapSklNode[K, V]
	nodeLen int64
	levels  int32
}

func (skl *xOrdMapSkl[K, V]) Levels() int32 {
	return skl.levels
}

func (skl *xOrdMapSkl[K, V]) Len() int64 {
	return skl.nodeLen
}

// findPredecessors walks the strict less-than descent and records the last
// node visited per lane.
func (skl *xOrdMapSkl[K, V]) findPredecessors(key K, aux []*xOrdMapSklNode[K, V]) *xOrdMapSklNode[K, V] {
	pred := skl.head
	for /* vertical */ i := skl.levels - 1; i >= 0; i-- {
		for /* horizontal */ pred.forwards[i] != nil && skl.kcmp(pred.forwards[i].key, key) < 0 {
			pred = pred.forwards[i]
		}
		if aux != nil {
			aux[i] = pred
		}
	}
	return pred
}

func (skl *xOrdMapSkl[K, V]) Put(key K, val V) {
	aux := make([]*xOrdMapSklNode[K, V], sklMaxLevel)
	pred := skl.findPredecessors(key, aux)

	if /* upsert */ cur := pred.forwards[0]; cur != nil && skl.kcmp(cur.key, key) == 0 {
		cur.val = val
		return
	}

	lvl := skl.rand(sklMaxLevel, skl.nodeLen)
	if lvl > skl.levels {
		for i := skl.levels; i < lvl; i++ {
			aux[i] = skl.head
		}
		skl.levels = lvl
	}
	newNode := newXOrdMapSklNode(lvl, key, val)
	for i := int32(0); i < lvl; i++ {
		newNode.forwards[i] = aux[i].forwards[i]
		aux[i].forwards[i] = newNode
	}
	skl.nodeLen++
}

func (skl *xOrdMapSkl[K, V]) Load(key K) (V, bool) {
	pred := skl.findPredecessors(key, nil)
	if cur := pred.forwards[0]; cur != nil && skl.kcmp(cur.key, key) == 0 {
		return cur.val, true
	}
	return *new(V), false
}

func (skl *xOrdMapSkl[K, V]) Remove(key K) (V, bool) {
	aux := make([]*xOrdMapSklNode[K, V], sklMaxLevel)
	pred := skl.findPredecessors(key, aux)

	target := pred.forwards[0]
	if target == nil || skl.kcmp(target.key, key) != 0 {
		return *new(V), false
	}
	for i := int32(0); i < skl.levels; i++ {
		if aux[i].forwards[i] == target {
			aux[i].forwards[i] = target.forwards[i]
		}
	}
	for /* reduce levels */ skl.levels > 1 && skl.head.forwards[skl.levels-1] == nil {
		skl.levels--
	}
	skl.nodeLen--
	return target.val, true
}

func (skl *xOrdMapSkl[K, V]) Foreach(action func(i int64, key K, val V) bool) {
	var i int64
	for x := skl.head.forwards[0]; x != nil; x = x.forwards[0] {
		if !action(i, x.key, x.val) {
			break
		}
		i++
	}
}

func (skl *xOrdMapSkl[K, V]) Release() {
	for i := 0; i < sklMaxLevel; i++ {
		skl.head.forwards[i] = nil
	}
	skl.levels = 1
	skl.nodeLen = 0
}

type XOrdMapSklOption[K infra.OrderedKey, V any] func(*xOrdMapSkl[K, V])

func WithXOrdMapSklRandLevelGen[K infra.OrderedKey, V any](gen SklRand) XOrdMapSklOption[K, V] {
	return func(skl *xOrdMapSkl[K, V]) {
		skl.rand = gen
	}
}

func WithXOrdMapSklKeyComparator[K infra.OrderedKey, V any](kcmp infra.OrderedKeyComparator[K]) XOrdMapSklOption[K, V] {
	return func(skl *xOrdMapSkl[K, V]) {
		skl.kcmp = kcmp
	}
}

func NewXOrdMapSkl[K infra.OrderedKey, V any](opts ...XOrdMapSklOption[K, V]) OrdMapSkipList[K, V] {
	skl := &xOrdMapSkl[K, V]{
		kcmp:   infra.OrderedKeyCompare[K],
		rand:   randomLevel,
		head:   newXOrdMapSklNode[K, V](sklMaxLevel, *new(K), *new(V)),
		levels: 1,
	}
	for _, o := range opts {
		o(skl)
	}
	return skl
}
