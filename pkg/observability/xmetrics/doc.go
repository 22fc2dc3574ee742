// Package xmetrics 提供结果缓存使用的可观测性接口（tracing + metrics）。
//
// 两类能力：
//   - Observer/Span：包裹一次操作（如写报告），产生 trace span 以及
//     resultcache.operation.total / resultcache.operation.duration 指标。
//   - CacheRecorder：记录缓存的写入、淘汰和读取计数，
//     满足 xresult.Recorder 接口，无需本包依赖 xresult。
//
// 默认实现基于 OpenTelemetry，未配置 Provider 时使用全局 Provider
// （未安装 SDK 时为 noop）。
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xreport",
//		Operation: "write",
//	})
//	defer func() { span.End(xmetrics.Result{Err: err}) }()
//
// 统一属性：component / operation / status；缓存指标附加 cache / reason。
package xmetrics
