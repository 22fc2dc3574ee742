// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xresult: 有界、带 TTL 的最近结果缓存
package storage
