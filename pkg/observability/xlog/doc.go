// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 动态级别调整（运行时热更新，配合 xconf.Watch 使用）
//   - 强制 context 传递，方法签名只接受 slog.Attr
//   - 内部写入错误计数与回调，不向业务返回错误
//
// # 创建 Logger
//
// Builder 采用 first-error-wins：遇到第一个配置错误后，Build 返回该错误。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/resultcache/app.log").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// Level 实现 encoding.TextMarshaler/TextUnmarshaler，可直接出现在配置结构体中。
//
// # 与标准库互通
//
// [Slog] 返回共享同一 Handler 与 LevelVar 的 *slog.Logger，
// 供只接受 *slog.Logger 的组件（如 xrun）使用。
package xlog
