package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricCacheAdded   = "resultcache.cache.added"
	metricCacheEvicted = "resultcache.cache.evicted"
	metricCacheRead    = "resultcache.cache.read"

	attrCache  = "cache"
	attrReason = "reason"
)

// CacheRecorder 将缓存事件记录为 OTel 计数器。
//
// 方法签名与 xresult.Recorder 一致，可直接通过 xresult.WithRecorder 注入。
// 所有指标都带有 cache=<name> 属性；淘汰指标额外带有 reason 属性。
type CacheRecorder struct {
	added   metric.Int64Counter
	evicted metric.Int64Counter
	read    metric.Int64Counter
	attrs   metric.MeasurementOption
	name    string
}

// NewCacheRecorder 创建名为 name 的缓存指标记录器。
func NewCacheRecorder(name string, opts ...Option) (*CacheRecorder, error) {
	if name == "" {
		return nil, ErrEmptyCacheName
	}
	cfg := newOTelConfig(opts)
	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	added, err := meter.Int64Counter(metricCacheAdded,
		metric.WithDescription("entries added to the cache"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCounter, err)
	}
	evicted, err := meter.Int64Counter(metricCacheEvicted,
		metric.WithDescription("entries removed from the cache by capacity, ttl or clear"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCounter, err)
	}
	read, err := meter.Int64Counter(metricCacheRead,
		metric.WithDescription("values returned by cache reads"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCounter, err)
	}

	return &CacheRecorder{
		added:   added,
		evicted: evicted,
		read:    read,
		attrs:   metric.WithAttributes(attribute.String(attrCache, name)),
		name:    name,
	}, nil
}

// Name 返回缓存名称。
func (r *CacheRecorder) Name() string { return r.name }

// RecordAdd 记录一次写入。
func (r *CacheRecorder) RecordAdd() {
	r.added.Add(context.Background(), 1, r.attrs)
}

// RecordEviction 记录 n 个因 reason 被移除的条目。n <= 0 时忽略。
func (r *CacheRecorder) RecordEviction(reason string, n int) {
	if n <= 0 {
		return
	}
	r.evicted.Add(context.Background(), int64(n), metric.WithAttributes(
		attribute.String(attrCache, r.name),
		attribute.String(attrReason, reason),
	))
}

// RecordRead 记录一次读取返回的值数量。空读取同样产生数据点，增量为 0。
func (r *CacheRecorder) RecordRead(n int) {
	if n < 0 {
		n = 0
	}
	r.read.Add(context.Background(), int64(n), r.attrs)
}
