package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedKeyCompare_Int(t *testing.T) {
	assert.Equal(t, int64(0), OrderedKeyCompare(1, 1))
	assert.Equal(t, int64(1), OrderedKeyCompare(2, 1))
	assert.Equal(t, int64(-1), OrderedKeyCompare(-3, 1))
}

func TestOrderedKeyCompare_Float64(t *testing.T) {
	assert.Equal(t, int64(0), OrderedKeyCompare(90.0, 90.0))
	assert.Equal(t, int64(1), OrderedKeyCompare(95.5, 90.0))
	assert.Equal(t, int64(-1), OrderedKeyCompare(85.0, 90.0))
}

func TestOrderedKeyCompare_String(t *testing.T) {
	assert.Equal(t, int64(0), OrderedKeyCompare("Bob", "Bob"))
	assert.Equal(t, int64(1), OrderedKeyCompare("Charlie", "Bob"))
	assert.Equal(t, int64(-1), OrderedKeyCompare("Alice", "Bob"))
}

func TestOrderedKeyCompare_AsComparator(t *testing.T) {
	var cmp OrderedKeyComparator[uint8] = OrderedKeyCompare[uint8]
	assert.Equal(t, int64(-1), cmp(0x01, 0xFF))
}
