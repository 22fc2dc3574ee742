// Package xconf 基于 koanf 的配置加载。
//
// 支持 YAML（.yaml/.yml）与 JSON（.json）两种格式，按扩展名自动识别；
// 也可通过 NewFromBytes 从内存数据加载（如 K8s ConfigMap 挂载内容）。
//
// 结构体字段使用 `koanf` 标签映射。time.Duration 字段接受 "30s" 形式的字符串，
// 实现了 encoding.TextUnmarshaler 的类型（如 xlog.Level）直接从字符串解析。
//
// # 热更新
//
// Watch 基于 fsnotify 监视配置文件所在目录，带防抖地调用 Reload 并回调通知。
// Watcher.Run 阻塞直到 ctx 取消，可直接交给 xrun 管理。
//
//	cfg, _ := xconf.New("/etc/resultcache/config.yaml")
//	w, _ := xconf.Watch(cfg, func(c xconf.Config, err error) {
//		if err != nil {
//			return
//		}
//		var lc LogConfig
//		_ = c.Unmarshal("log", &lc)
//		logger.SetLevel(lc.Level)
//	})
//	g.Go(w.Run)
package xconf
