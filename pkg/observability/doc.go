// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog，支持运行时调整级别
//   - xrotate: 日志文件轮转（lumberjack）
//   - xmetrics: 操作追踪与缓存计数指标（OpenTelemetry）
package observability
