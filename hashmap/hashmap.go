package hashmap

import (
	"errors"

	"github.com/hongker/go-dstruct/tracker"
)

const loadFactor = 0.75 // 负载因子，插入后超过该值即扩容

var (
	ErrInvalidMap       = errors.New("hashmap: map is nil or freed")
	ErrDuplicateKey     = errors.New("hashmap: duplicate key")
	ErrCapacityExceeded = errors.New("hashmap: capacity exceeded")
	ErrLengthMismatch   = errors.New("hashmap: keys and values differ in length")
	ErrTrackerDisposed  = errors.New("hashmap: tracker refused registration")
)

// IntMap 以string为key、int32为value的哈希表，使用链地址法处理冲突。
// 非并发安全，多个goroutine同时修改时需由调用方加锁。
type IntMap struct {
	size        uint64                                 // 总数量
	buckets     buckets                                // 桶
	maxCapacity uint64                                 // 桶个数上限
	alloc       func(capacity uint64) (buckets, error) // 分配桶的函数
	tracker     *tracker.Tracker                       // 资源登记表，可为空
}

// New 创建一个空的map，默认16个桶。
// 指定了tracker但登记失败时返回nil。
func New(opts ...Option) *IntMap {
	o := newOptions(opts...)
	b, err := newBuckets(o.capacity)
	if err != nil {
		return nil
	}

	hm := &IntMap{
		buckets:     b,
		maxCapacity: o.maxCapacity,
		alloc:       newBuckets,
		tracker:     o.tracker,
	}
	if hm.tracker != nil && !hm.tracker.Register(hm, hm.Free) {
		return nil
	}
	return hm
}

// FromPairs 用keys和values逐对构建map，任意一对插入失败时销毁构建了一半的map
func FromPairs(keys []string, values []int32, opts ...Option) (*IntMap, error) {
	if len(keys) != len(values) {
		return nil, ErrLengthMismatch
	}

	hm := New(opts...)
	if hm == nil {
		return nil, ErrTrackerDisposed
	}

	for i, key := range keys {
		if err := hm.insert(key, values[i]); err != nil {
			hm.discard()
			return nil, err
		}
	}
	return hm, nil
}

// discard 销毁构建中的map。
// 构建期间不能有其他对象登记到同一个tracker，否则回滚的将是其他对象。
func (hm *IntMap) discard() {
	if hm.tracker != nil {
		hm.tracker.Rollback()
		return
	}
	hm.Free()
}

// valid 判断map是否可用
func (hm *IntMap) valid() bool {
	return hm != nil && len(hm.buckets) > 0
}

// Free 释放所有节点和桶，之后map不可再用
func (hm *IntMap) Free() {
	if !hm.valid() {
		return
	}
	hm.buckets.clear()
	hm.buckets = nil
	hm.size = 0
	// 由tracker回滚或销毁时已不在登记表中，这里返回false
	hm.tracker.Unregister(hm)
}

// Insert 插入新key，key已存在或map不可用时返回false且不做任何修改
func (hm *IntMap) Insert(key string, value int32) bool {
	return hm.insert(key, value) == nil
}

func (hm *IntMap) insert(key string, value int32) error {
	if !hm.valid() {
		return ErrInvalidMap
	}

	hashcode := Hash(key)
	if hm.buckets.find(key, hashcode) != nil {
		return ErrDuplicateKey
	}

	hm.buckets.link(&entry{key: key, value: value, hash: hashcode})
	hm.size++

	// 判断到负载因子大于指定阈值时，就需要扩容并重新分配
	if float64(hm.size)/float64(len(hm.buckets)) > loadFactor {
		if err := hm.resize(); err != nil {
			// 扩容失败，撤销本次插入
			hm.buckets.unlink(key, hashcode)
			hm.size--
			return err
		}
	}
	return nil
}

// resize 扩容并重新分配，失败时原有的桶保持不变
func (hm *IntMap) resize() error {
	capacity := uint64(len(hm.buckets)) * growthFactor
	if capacity > hm.maxCapacity {
		return ErrCapacityExceeded
	}

	temp, err := hm.alloc(capacity)
	if err != nil {
		return err
	}
	hm.buckets.rehash(temp)
	hm.buckets = temp
	return nil
}

// Get 查询，返回值以及是否存在
func (hm *IntMap) Get(key string) (int32, bool) {
	if !hm.valid() {
		return 0, false
	}
	e := hm.buckets.find(key, Hash(key))
	if e == nil {
		return 0, false
	}
	return e.value, true
}

// Set key存在时原地覆盖，否则等同于Insert
func (hm *IntMap) Set(key string, value int32) bool {
	if !hm.valid() {
		return false
	}
	if e := hm.buckets.find(key, Hash(key)); e != nil {
		e.value = value
		return true
	}
	return hm.Insert(key, value)
}

// Remove 删除key，不存在时什么都不做，删除后不会缩容
func (hm *IntMap) Remove(key string) {
	if !hm.valid() {
		return
	}
	if hm.buckets.unlink(key, Hash(key)) != nil {
		hm.size--
	}
}

func (hm *IntMap) ContainsKey(key string) bool {
	if !hm.valid() {
		return false
	}
	return hm.buckets.find(key, Hash(key)) != nil
}

// Clear 清空所有数据，保留当前的桶个数
func (hm *IntMap) Clear() {
	if !hm.valid() {
		return
	}
	hm.buckets.clear()
	hm.size = 0
}

func (hm *IntMap) Len() int {
	if !hm.valid() {
		return 0
	}
	return int(hm.size)
}

func (hm *IntMap) IsEmpty() bool {
	return hm.Len() == 0
}

// Capacity 当前的桶个数
func (hm *IntMap) Capacity() int {
	if !hm.valid() {
		return 0
	}
	return len(hm.buckets)
}

// Keys 返回所有key的副本，顺序与Values一致。
// map不可用时返回nil，map为空时返回长度为0的切片。
func (hm *IntMap) Keys() []string {
	if !hm.valid() {
		return nil
	}
	keys := make([]string, 0, hm.size)
	hm.buckets.walk(func(e *entry) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Values 返回所有value的副本，顺序与Keys一致。
func (hm *IntMap) Values() []int32 {
	if !hm.valid() {
		return nil
	}
	values := make([]int32, 0, hm.size)
	hm.buckets.walk(func(e *entry) bool {
		values = append(values, e.value)
		return true
	})
	return values
}

// Equals 判断两个map的数量和key-value是否完全一致，与桶和链表的顺序无关。
// 任意一个为nil时返回false。
func Equals(a, b *IntMap) bool {
	if !a.valid() || !b.valid() {
		return false
	}
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}

	equal := true
	a.buckets.walk(func(e *entry) bool {
		other := b.buckets.find(e.key, e.hash)
		equal = other != nil && other.value == e.value
		return equal
	})
	return equal
}
