// Package xrun 提供基于 errgroup + context 的进程生命周期管理。
//
// 任一服务返回错误、收到终止信号或调用 Cancel 时，共享的 context 被取消，
// 所有服务应监听 ctx.Done() 并退出。xresultctl 用它组织输入读取、
// 定时报告、TTL 清理和配置监视几个并发任务。
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("watch"))
//	g.GoWithName("reader", readInput)
//	g.GoWithName("report", xrun.Cron("@every 1m", writeReport))
//	g.GoWithName("sweep", xrun.Ticker(10*time.Second, false, sweep))
//	err := g.Wait()
//
// Run/RunWithOptions 额外注册信号监听，收到信号时返回 *SignalError，
// 可用 errors.Is(err, xrun.ErrSignal) 判断。
package xrun
