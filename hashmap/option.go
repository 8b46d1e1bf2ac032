package hashmap

import "github.com/hongker/go-dstruct/tracker"

type options struct {
	capacity    uint64           // 初始桶个数
	maxCapacity uint64           // 桶个数上限
	tracker     *tracker.Tracker // 资源登记表
}

type Option func(o *options)

// WithCapacity 指定初始桶个数，会向上取整为2的N次方
func WithCapacity(hint uint64) Option {
	return func(o *options) {
		if hint == 0 {
			hint = defaultCapacity
		} else if hint > maxCapacity {
			hint = maxCapacity
		}
		o.capacity = roundUp(hint)
	}
}

// WithMaxCapacity 限制扩容的上限，最大为 1<<31
func WithMaxCapacity(limit uint64) Option {
	return func(o *options) {
		if limit == 0 || limit > maxCapacity {
			limit = maxCapacity
		}
		o.maxCapacity = roundUp(limit)
	}
}

// WithTracker 创建时将map登记到tracker，由tracker负责回滚或销毁
func WithTracker(t *tracker.Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

func newOptions(opts ...Option) options {
	o := options{
		capacity:    defaultCapacity,
		maxCapacity: maxCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity > o.maxCapacity {
		o.capacity = o.maxCapacity
	}
	return o
}
