// Package xreport 将结果缓存的快照写成带时间戳的 JSON 报告文件。
//
// 报告格式：
//
//	{
//	  "id": "6f1c…",
//	  "timestamp": "2026-10-19T10:04:05.123456789+08:00",
//	  "summary": { ... }
//	}
//
// timestamp 为带本地时区偏移的 RFC 3339 时间；JSON 两空格缩进，
// 不转义 HTML 字符，非 ASCII 字符原样保留。
//
// 写入流程：创建父目录 → 临时文件写入并 fsync → rename 覆盖目标。
// 写入失败按 WithAttempts/WithDelay 重试，读者永远不会看到半个文件。
//
//	w, _ := xreport.NewWriter("reports/latest.json")
//	path, err := w.Write(ctx, xreport.Snapshot(cache, 100))
package xreport
