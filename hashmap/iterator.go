package hashmap

type Pair struct {
	Key   string
	Value int32
}

// Iterator 创建时复制map的所有数据，之后map的修改不会影响迭代结果
type Iterator struct {
	pairs  []Pair // 快照
	cursor int    // 游标
}

// NewIterator map不可用时返回nil，map为空时返回一个已耗尽的迭代器
func NewIterator(hm *IntMap) *Iterator {
	if !hm.valid() {
		return nil
	}
	pairs := make([]Pair, 0, hm.size)
	hm.buckets.walk(func(e *entry) bool {
		pairs = append(pairs, Pair{Key: e.key, Value: e.value})
		return true
	})
	return &Iterator{pairs: pairs}
}

func (hm *IntMap) Iterator() *Iterator {
	return NewIterator(hm)
}

// Next 返回游标处的数据并后移，耗尽后返回false
func (it *Iterator) Next() (Pair, bool) {
	if it == nil || it.cursor >= len(it.pairs) {
		return Pair{}, false
	}
	p := it.pairs[it.cursor]
	it.cursor++
	return p, true
}

// Reset 将游标重置到起点，复用同一份快照
func (it *Iterator) Reset() {
	if it == nil {
		return
	}
	it.cursor = 0
}

func (it *Iterator) Len() int {
	if it == nil {
		return 0
	}
	return len(it.pairs)
}
