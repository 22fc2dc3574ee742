package xrun

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSignals 返回默认监听的信号：SIGHUP、SIGINT、SIGTERM、SIGQUIT。
// 每次调用返回新切片。
func DefaultSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}

// testSigChanKey 让测试通过 context 注入信号，避免向进程发送真实信号。
type testSigChanKey struct{}

func testSigChan(ctx context.Context) <-chan os.Signal {
	c, ok := ctx.Value(testSigChanKey{}).(<-chan os.Signal)
	if !ok {
		return nil
	}
	return c
}

func withTestSigChan(ctx context.Context, c <-chan os.Signal) context.Context {
	return context.WithValue(ctx, testSigChanKey{}, c)
}

// Ticker 返回按 interval 周期执行 fn 的服务函数。
//
// immediate 为 true 时启动即执行一次。fn 返回错误时服务以该错误退出；
// ctx 取消时返回 ctx.Err()。interval 必须为正数，否则返回 ErrInvalidInterval。
func Ticker(interval time.Duration, immediate bool, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return ErrInvalidInterval
		}
		if fn == nil {
			return ErrNilFunc
		}

		if immediate {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx); err != nil {
				return err
			}
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := fn(ctx); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Cron 返回按 cron 表达式执行 fn 的服务函数。
//
// spec 使用标准五段格式，也支持 "@every 30s"、"@hourly" 等描述符
// （cron.ParseStandard）。fn 在服务 goroutine 中同步执行，
// 执行期间错过的触发点被跳过。
//
//	g.Go(xrun.Cron("*/5 * * * *", func(ctx context.Context) error {
//	    return flush(ctx)
//	}))
func Cron(spec string, fn func(ctx context.Context) error) func(ctx context.Context) error {
	schedule, parseErr := cron.ParseStandard(spec)
	return func(ctx context.Context) error {
		if parseErr != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, parseErr)
		}
		if fn == nil {
			return ErrNilFunc
		}

		for {
			next := schedule.Next(time.Now())
			if next.IsZero() {
				<-ctx.Done()
				return ctx.Err()
			}

			timer := time.NewTimer(time.Until(next))
			select {
			case <-timer.C:
				if err := fn(ctx); err != nil {
					return err
				}
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
}

// ValidateCron 检查 spec 能否被 Cron 接受。
func ValidateCron(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}
	return nil
}

// WaitForDone 返回阻塞到 ctx 取消的占位服务。
func WaitForDone() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
}
