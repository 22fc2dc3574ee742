// Package xresult 提供有界、并发安全的"最近结果"缓存，支持可选的 TTL 过期。
//
// 生产者通过 Add 追加结果，消费者通过 All/Latest 读取最近的历史。
// 缓存容量固定：写满后每次 Add 先淘汰最旧的一条（严格 FIFO，一进一出）。
// 配置 TTL 后，读取前会从队首裁剪超过 TTL 的条目（惰性过期，不启动后台 goroutine）。
//
// # 核心特性
//
//   - 泛型支持：值类型 T 为任意类型，不要求 comparable
//   - 严格 FIFO：按插入顺序淘汰，不按访问频率或最近访问
//   - 惰性 TTL：仅在 All/Latest/Sweep 中裁剪过期前缀
//   - 快照语义：All/Latest 返回新分配的切片，后续写入不影响已返回结果
//   - 并发安全：每个实例持有独立的互斥锁
//
// # 配置
//
// Config 提供必需配置：
//   - Capacity：最大条目数，必须 >= 1 且 <= MaxCapacity
//   - TTL：条目存活时间，0 表示不过期，不允许负值
//
// 可选配置：
//   - WithClock：注入时间源（测试或回放场景）
//   - WithRecorder：挂载指标记录器（见 xmetrics.CacheRecorder）
//
// # 读取语义
//
//   - All()：裁剪过期前缀后，返回全部值（旧 → 新）
//   - Latest(n)：裁剪过期前缀后，返回最近 n 条（旧 → 新）；n >= Len 时等价于 All；
//     n <= 0 返回空切片
//   - PeekOldest()：返回最旧的值，不裁剪、不修改状态
//   - Len()：当前持有的条目数，可能包含尚未被读取裁剪的过期条目
//
// # 已知限制
//
//   - 淘汰不会通知生产者：历史是尽力保留，不保证留存
//   - Recorder 回调在锁内同步执行，严禁在回调中调用 Cache 自身方法
//   - 不支持持久化和跨进程共享
package xresult
