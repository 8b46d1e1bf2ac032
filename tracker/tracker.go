package tracker

import (
	"container/list"
	"reflect"
	"sync"
)

// registered 登记的对象及其销毁函数
type registered struct {
	obj        any
	destructor func()
}

// Tracker 资源登记表，按后进先出的顺序回滚或销毁已登记的对象
type Tracker struct {
	sync.Mutex                       // 锁，保证并发安全
	items      *list.List            // 链表，头部为最近登记的对象
	index      map[any]*list.Element // 对象到链表元素的映射
	disposed   bool                  // 是否已销毁
}

func New() *Tracker {
	return &Tracker{
		items: list.New(),
		index: map[any]*list.Element{},
	}
}

// Register 登记对象及其销毁函数，登记失败时由调用方自行释放对象
func (t *Tracker) Register(obj any, destructor func()) bool {
	if t == nil || obj == nil || destructor == nil {
		return false
	}
	if !reflect.TypeOf(obj).Comparable() { // 不可比较的对象无法作为索引
		return false
	}
	t.Lock()
	defer t.Unlock()
	if t.disposed {
		return false
	}
	if _, ok := t.index[obj]; ok { // 同一对象只允许登记一次
		return false
	}
	t.index[obj] = t.items.PushFront(&registered{obj: obj, destructor: destructor})
	return true
}

// Rollback 销毁最近登记的对象
func (t *Tracker) Rollback() {
	if t == nil {
		return
	}
	t.Lock()
	r := t.pop()
	t.Unlock()
	if r != nil {
		// 在锁外执行，销毁函数可能会回调 Unregister
		r.destructor()
	}
}

// Unregister 解除登记，不执行销毁函数
func (t *Tracker) Unregister(obj any) bool {
	if t == nil || obj == nil || !reflect.TypeOf(obj).Comparable() {
		return false
	}
	t.Lock()
	defer t.Unlock()
	elem, ok := t.index[obj]
	if !ok {
		return false
	}
	delete(t.index, obj)
	t.items.Remove(elem)
	return true
}

// Dispose 从新到旧依次销毁所有对象，之后不再接受登记
func (t *Tracker) Dispose() {
	if t == nil {
		return
	}
	t.Lock()
	if t.disposed {
		t.Unlock()
		return
	}
	t.disposed = true
	t.Unlock()

	for {
		t.Lock()
		r := t.pop()
		t.Unlock()
		if r == nil {
			return
		}
		r.destructor()
	}
}

func (t *Tracker) Len() int {
	if t == nil {
		return 0
	}
	t.Lock()
	defer t.Unlock()
	return t.items.Len()
}

func (t *Tracker) IsDisposed() bool {
	if t == nil {
		return true
	}
	t.Lock()
	disposed := t.disposed
	t.Unlock()
	return disposed
}

// pop 取出头部元素，调用方需持有锁
func (t *Tracker) pop() *registered {
	elem := t.items.Front()
	if elem == nil {
		return nil
	}
	r := t.items.Remove(elem).(*registered)
	delete(t.index, r.obj)
	return r
}
