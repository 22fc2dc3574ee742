package xresult

import "errors"

var (
	// ErrInvalidConfig 表示缓存配置无效，是以下配置错误的共同根错误。
	ErrInvalidConfig = errors.New("xresult: invalid configuration")

	// ErrInvalidCapacity 表示容量小于 1。
	ErrInvalidCapacity = errors.New("xresult: capacity must be at least 1")

	// ErrCapacityExceedsMax 表示容量超过上限 (16,777,216)。
	ErrCapacityExceedsMax = errors.New("xresult: capacity must not exceed 16777216")

	// ErrInvalidTTL 表示 TTL 为负值。
	ErrInvalidTTL = errors.New("xresult: TTL must not be negative")
)
