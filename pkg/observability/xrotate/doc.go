// Package xrotate 为 xlog 的文件输出提供基于大小的日志轮转。
//
// 实现基于 gopkg.in/natefinch/lumberjack.v2：超过 MaxSizeMB 自动轮转，
// 按 MaxBackups / MaxAgeDays 清理备份，可选 gzip 压缩。
//
// Rotator 是 io.WriteCloser 的超集，可直接作为 xlog.Builder.SetOutput 的目标，
// 通常通过 xlog.Builder.SetRotation 间接创建。
package xrotate
