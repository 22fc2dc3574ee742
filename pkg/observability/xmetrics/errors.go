package xmetrics

import "errors"

var (
	// ErrCreateCounter 表示创建 OTel Counter 失败。
	ErrCreateCounter = errors.New("xmetrics: create counter failed")
	// ErrCreateHistogram 表示创建 OTel Histogram 失败。
	ErrCreateHistogram = errors.New("xmetrics: create histogram failed")
	// ErrEmptyCacheName 表示 CacheRecorder 的缓存名称为空。
	ErrEmptyCacheName = errors.New("xmetrics: empty cache name")
)
