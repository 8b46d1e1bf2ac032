package hashmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(it *Iterator) []Pair {
	var pairs []Pair
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		pairs = append(pairs, p)
	}
	return pairs
}

func TestIterator(t *testing.T) {
	hmap := New()
	for i := 0; i < 100; i++ {
		hmap.Insert(fmt.Sprintf("key%d", i), int32(i))
	}

	it := hmap.Iterator()
	require.NotNil(t, it)
	assert.Equal(t, 100, it.Len())

	pairs := drain(it)
	require.Len(t, pairs, 100)

	keys := hmap.Keys()
	values := hmap.Values()
	expected := make([]Pair, len(keys))
	for i := range keys {
		expected[i] = Pair{Key: keys[i], Value: values[i]}
	}
	assert.ElementsMatch(t, expected, pairs)

	// 耗尽后继续调用仍返回false
	p, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, Pair{}, p)
	_, ok = it.Next()
	assert.False(t, ok)

	it.Reset()
	assert.Equal(t, pairs, drain(it))
}

func TestIteratorSnapshot(t *testing.T) {
	hmap := New()
	hmap.Insert("a", 1)
	hmap.Insert("b", 2)

	it := NewIterator(hmap)
	hmap.Set("a", 100)
	hmap.Remove("b")
	hmap.Insert("c", 3)
	hmap.Clear()

	assert.ElementsMatch(t, []Pair{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, drain(it))

	hmap.Free()
	it.Reset()
	assert.Len(t, drain(it), 2)
}

func TestIteratorEmpty(t *testing.T) {
	it := New().Iterator()
	require.NotNil(t, it)
	assert.Equal(t, 0, it.Len())
	_, ok := it.Next()
	assert.False(t, ok)

	it.Reset()
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorNil(t *testing.T) {
	var hmap *IntMap
	it := NewIterator(hmap)
	assert.Nil(t, it)
	assert.Equal(t, 0, it.Len())
	_, ok := it.Next()
	assert.False(t, ok)
	it.Reset()
}
