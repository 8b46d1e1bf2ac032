package hashmap

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	assert.Equal(t, uint32(0x811c9dc5), Hash(""))
	assert.Equal(t, uint32(0xe40c292c), Hash("a"))
	assert.Equal(t, uint32(0xbf9cf968), Hash("foobar"))
}

func TestHashMatchesFNV(t *testing.T) {
	keys := []string{"", "a", "key0", "key999", "Brian", "Erika", "Felipe", "héllo", "\xff\xfe\x80", "日本語"}
	for _, key := range keys {
		h := fnv.New32a()
		h.Write([]byte(key))
		assert.Equal(t, h.Sum32(), Hash(key), key)
	}
}

func BenchmarkHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hash("benchmark-key")
	}
}
