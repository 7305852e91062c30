package list

// References:
// https://www.cl.cam.ac.uk/teaching/0506/Algorithms/skiplists.pdf
// classic: https://github.com/antirez/disque/blob/master/src/skiplist.c
// zskiplist: https://github1s.com/redis/redis/blob/unstable/src/t_zset.c

import (
	randv2 "math/rand/v2"
)

// randomLevel draws a level from the capped geometric distribution:
// level k with probability ~ P^(k-1) * (1-P), truncated at maxLevel.
// Goland math random (math.Float64()) contains global mutex lock
// Ref
// https://cs.opensource.google/go/go/+/refs/tags/go1.21.5:src/math/rand/rand.go
// 1. Avoid using global mutex lock
// 2. Avoid generating random number each time
func randomLevel(maxLevel int32, currentElements int64) int32 {
	level := int32(1)
	for float64(randv2.Int64()&0xFFFF) < sklProbability*0xFFFF && level < maxLevel {
		level++
	}
	return level
}

// NewSeededSklRand builds a SklRand over a private PCG source so that
// node levels replay exactly from the seed pair. Not safe for concurrent
// callers, which matches the structures it feeds.
func NewSeededSklRand(seed1, seed2 uint64) SklRand {
	src := randv2.New(randv2.NewPCG(seed1, seed2))
	return func(maxLevel int32, currentElements int64) int32 {
		level := int32(1)
		for float64(src.Int64()&0xFFFF) < sklProbability*0xFFFF && level < maxLevel {
			level++
		}
		return level
	}
}
