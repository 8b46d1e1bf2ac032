package hashmap

const (
	defaultCapacity = 16      // 初始桶个数
	growthFactor    = 2       // 扩容倍数
	maxCapacity     = 1 << 31 // 桶个数上限
)

// roundUp 返回邻近的2的N次方的数
func roundUp(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}

// entry 链表节点，hash在插入时计算一次，扩容时直接复用
type entry struct {
	key   string
	value int32
	hash  uint32
	next  *entry
}

// buckets 每个桶保存冲突链表的头节点
type buckets []*entry

// newBuckets 分配指定个数的桶，超过上限时返回错误
func newBuckets(capacity uint64) (buckets, error) {
	if capacity == 0 || capacity > maxCapacity {
		return nil, ErrCapacityExceeded
	}
	return make(buckets, capacity), nil
}

// hashFor 通过位运算确定hashcode对应的位置
func (buckets buckets) hashFor(hashcode uint32) uint64 {
	return uint64(hashcode) & (uint64(len(buckets)) - 1)
}

// find 在冲突链表中查找key
func (buckets buckets) find(key string, hashcode uint32) *entry {
	for e := buckets[buckets.hashFor(hashcode)]; e != nil; e = e.next {
		if e.hash == hashcode && e.key == key {
			return e
		}
	}
	return nil
}

// link 将节点插入到链表头部
func (buckets buckets) link(e *entry) {
	idx := buckets.hashFor(e.hash)
	e.next = buckets[idx]
	buckets[idx] = e
}

// unlink 从链表中摘除key对应的节点
func (buckets buckets) unlink(key string, hashcode uint32) *entry {
	idx := buckets.hashFor(hashcode)
	var prev *entry
	for curr := buckets[idx]; curr != nil; curr = curr.next {
		if curr.hash != hashcode || curr.key != key {
			prev = curr
			continue
		}
		if prev == nil {
			buckets[idx] = curr.next
		} else {
			prev.next = curr.next
		}
		curr.next = nil
		return curr
	}
	return nil
}

// walk 按桶的顺序遍历所有节点，fn返回false时停止遍历
func (buckets buckets) walk(fn func(e *entry) bool) {
	for _, head := range buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e) {
				return
			}
		}
	}
}

// clear 清空所有链表，保留桶个数
func (buckets buckets) clear() {
	for i := range buckets {
		buckets[i] = nil
	}
}

// rehash 将所有节点按缓存的hash重新挂到新的桶上
func (buckets buckets) rehash(to buckets) {
	for _, head := range buckets {
		for e := head; e != nil; {
			next := e.next
			to.link(e)
			e = next
		}
	}
}
