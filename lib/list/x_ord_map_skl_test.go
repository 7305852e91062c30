package list

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXOrdMapSkl_PutLoadRemove(t *testing.T) {
	skl := NewXOrdMapSkl[int, string]()
	keys := lo.Shuffle([]int{7, 1, 9, 4, 2, 8, 3, 6, 5})
	for _, k := range keys {
		skl.Put(k, "v")
	}
	assert.Equal(t, int64(9), skl.Len())

	v, ok := skl.Load(4)
	require.True(t, ok)
	assert.Equal(t, "v", v)
	_, ok = skl.Load(10)
	assert.False(t, ok)

	v, ok = skl.Remove(4)
	require.True(t, ok)
	assert.Equal(t, "v", v)
	_, ok = skl.Load(4)
	assert.False(t, ok)
	_, ok = skl.Remove(4)
	assert.False(t, ok)
	assert.Equal(t, int64(8), skl.Len())
}

func TestXOrdMapSkl_PutReplacesOnSameKey(t *testing.T) {
	skl := NewXOrdMapSkl[string, int]()
	skl.Put("Alice", 90)
	skl.Put("Alice", 92)
	assert.Equal(t, int64(1), skl.Len())
	v, ok := skl.Load("Alice")
	require.True(t, ok)
	assert.Equal(t, 92, v)
}

func TestXOrdMapSkl_ForeachAscending(t *testing.T) {
	skl := NewXOrdMapSkl[int, int](
		WithXOrdMapSklRandLevelGen[int, int](NewSeededSklRand(12, 34)),
	)
	for _, k := range lo.Shuffle(lo.RangeFrom(0, 128)) {
		skl.Put(k, k*k)
	}
	next := 0
	skl.Foreach(func(i int64, key, val int) bool {
		require.Equal(t, next, key)
		require.Equal(t, key*key, val)
		next++
		return true
	})
	assert.Equal(t, 128, next)
}

func TestXOrdMapSkl_LevelsShrinkOnRemove(t *testing.T) {
	lvls := []int32{1, 5, 1}
	i := 0
	skl := NewXOrdMapSkl[int, int](
		WithXOrdMapSklRandLevelGen[int, int](func(maxLevel int32, _ int64) int32 {
			lvl := lvls[i]
			i++
			return lvl
		}),
	)
	skl.Put(1, 1)
	skl.Put(2, 2)
	skl.Put(3, 3)
	assert.Equal(t, int32(5), skl.Levels())
	_, ok := skl.Remove(2)
	require.True(t, ok)
	assert.Equal(t, int32(1), skl.Levels())
}

func TestXOrdMapSkl_Release(t *testing.T) {
	skl := NewXOrdMapSkl[int, int]()
	for k := 0; k < 16; k++ {
		skl.Put(k, k)
	}
	skl.Release()
	assert.Equal(t, int64(0), skl.Len())
	assert.Equal(t, int32(1), skl.Levels())
	_, ok := skl.Load(3)
	assert.False(t, ok)

	skl.Put(42, 1)
	assert.Equal(t, int64(1), skl.Len())
}
