package xreport

import (
	"github.com/omeyang/resultcache/pkg/storage/xresult"
)

// Summary 是缓存快照，作为 Envelope.Summary 写入报告。
type Summary[T any] struct {
	Count    int           `json:"count"`
	Capacity int           `json:"capacity"`
	TTL      string        `json:"ttl"`
	Stats    xresult.Stats `json:"stats"`
	Items    []T           `json:"items"`
}

// Snapshot 读取缓存最近 n 条未过期结果（按写入先后排列）。
// n <= 0 表示读取全部。TTL 为 0 时记为 "0s"。
func Snapshot[T any](c *xresult.Cache[T], n int) Summary[T] {
	var items []T
	if n > 0 {
		items = c.Latest(n)
	} else {
		items = c.All()
	}
	return Summary[T]{
		Count:    len(items),
		Capacity: c.Capacity(),
		TTL:      c.TTL().String(),
		Stats:    c.Stats(),
		Items:    items,
	}
}
