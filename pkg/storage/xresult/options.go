package xresult

import "time"

// MaxCapacity 缓存容量上限。
const MaxCapacity = 1 << 24 // 16,777,216

// Config 定义缓存配置。
type Config struct {
	// Capacity 最大条目数。
	// 必须 >= 1 且不超过 MaxCapacity。
	Capacity int `koanf:"capacity"`

	// TTL 条目存活时间，从 Add 时刻开始计算。
	// 0 表示不过期，不允许负值。
	TTL time.Duration `koanf:"ttl"`
}

// Validate 校验配置，错误同时匹配 ErrInvalidConfig 与具体原因。
func (c Config) Validate() error {
	switch {
	case c.Capacity < 1:
		return configError(ErrInvalidCapacity)
	case c.Capacity > MaxCapacity:
		return configError(ErrCapacityExceedsMax)
	case c.TTL < 0:
		return configError(ErrInvalidTTL)
	}
	return nil
}

// Option 定义缓存可选配置函数类型。
type Option func(*options)

type options struct {
	clock    func() time.Time
	recorder Recorder
}

// WithClock 设置时间源，默认 time.Now。传入 nil 会被忽略。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithRecorder 设置指标记录器。传入 nil 会被忽略。
//
// 记录器在缓存锁内同步调用，严禁在回调中访问同一 Cache，应避免耗时操作。
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}
