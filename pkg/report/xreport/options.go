package xreport

import (
	"time"

	"github.com/google/uuid"

	"github.com/omeyang/resultcache/pkg/observability/xmetrics"
)

const (
	// DefaultAttempts 默认总尝试次数（含首次）。
	DefaultAttempts uint = 3
	// DefaultDelay 默认重试间隔。
	DefaultDelay = 50 * time.Millisecond
)

// Option 配置 Writer。
type Option func(*Writer)

// WithAttempts 设置写入的总尝试次数，0 被忽略。
func WithAttempts(n uint) Option {
	return func(w *Writer) {
		if n > 0 {
			w.attempts = n
		}
	}
}

// WithDelay 设置两次尝试之间的固定间隔。
func WithDelay(d time.Duration) Option {
	return func(w *Writer) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// WithIDFunc 设置报告 ID 生成函数，默认 uuid.NewString。
func WithIDFunc(fn func() string) Option {
	return func(w *Writer) {
		if fn != nil {
			w.newID = fn
		}
	}
}

// WithClock 设置报告时间戳的时间源。
func WithClock(clock func() time.Time) Option {
	return func(w *Writer) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// WithObserver 设置写入操作的观测器。
func WithObserver(obs xmetrics.Observer) Option {
	return func(w *Writer) {
		if obs != nil {
			w.observer = obs
		}
	}
}

func defaultWriter(path string) *Writer {
	return &Writer{
		path:     path,
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
		newID:    uuid.NewString,
		clock:    time.Now,
		observer: xmetrics.NoopObserver{},
		write:    writeFile,
	}
}
