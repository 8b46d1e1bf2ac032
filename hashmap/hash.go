package hashmap

const (
	offsetBasis = 0x811c9dc5 // FNV-1a 32位偏移基数
	prime       = 0x01000193 // FNV-1a 32位质数
)

// Hash 计算key的FNV-1a哈希值，无随机种子，不具备抗哈希洪水攻击的能力
func Hash(key string) uint32 {
	h := uint32(offsetBasis)
	for i := 0; i < len(key); i++ {
		// 先异或再相乘
		h ^= uint32(key[i])
		h *= prime
	}
	return h
}
