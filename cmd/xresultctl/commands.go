package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/resultcache/pkg/config/xconf"
	"github.com/omeyang/resultcache/pkg/lifecycle/xrun"
	"github.com/omeyang/resultcache/pkg/observability/xlog"
	"github.com/omeyang/resultcache/pkg/observability/xmetrics"
	"github.com/omeyang/resultcache/pkg/observability/xrotate"
	"github.com/omeyang/resultcache/pkg/report/xreport"
	"github.com/omeyang/resultcache/pkg/storage/xresult"
)

const (
	cacheName = "results"

	// maxLineSize 单行结果的上限。
	maxLineSize = 4 << 20

	finalReportTimeout = 10 * time.Second
)

// errInputClosed 表示输入流已读完，watch 随之正常退出。
var errInputClosed = errors.New("input closed")

func cacheFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagInput,
			Aliases: []string{"i"},
			Usage:   "NDJSON 输入文件，- 表示 stdin",
			Value:   "-",
		},
		&cli.IntFlag{
			Name:  flagCapacity,
			Usage: "缓存容量",
			Value: defaultCapacity,
		},
		&cli.DurationFlag{
			Name:  flagTTL,
			Usage: "结果存活时间，0 表示不过期",
		},
		&cli.StringFlag{
			Name:    flagReport,
			Aliases: []string{"o"},
			Usage:   "报告文件路径",
			Value:   defaultReportPath,
		},
		&cli.IntFlag{
			Name:    flagReportCount,
			Aliases: []string{"n"},
			Usage:   "报告包含的最近结果数，0 表示全部",
			Value:   defaultReportCount,
		},
	}
}

func createWatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "持续读取结果并按计划写报告",
		Flags: append(cacheFlags(),
			&cli.StringFlag{
				Name:    flagSchedule,
				Aliases: []string{"s"},
				Usage:   "报告 cron 表达式，支持 @every <duration>",
				Value:   defaultSchedule,
			},
			&cli.DurationFlag{
				Name:  flagSweep,
				Usage: "主动清理过期结果的间隔，0 表示只在读取时清理",
			},
		),
		Action: cmdWatch,
	}
}

func createReportCommand() *cli.Command {
	return &cli.Command{
		Name:   "report",
		Usage:  "读取结果文件并写一次报告",
		Flags:  cacheFlags(),
		Action: cmdReport,
	}
}

func createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "显示版本信息",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "xresultctl %s\n", versionString())
			return err
		},
	}
}

// session 是一次命令执行所需的组件。
type session struct {
	cfg     appConfig
	file    xconf.Config
	log     xlog.LoggerWithLevel
	cleanup func() error
	cache   *xresult.Cache[json.RawMessage]
	writer  *xreport.Writer
}

func newSession(cmd *cli.Command) (*session, error) {
	cfg, file, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := newLogger(cfg.Log, cmd.Root().ErrWriter)
	if err != nil {
		return nil, newUsageError("日志配置无效", err)
	}

	s := &session{cfg: cfg, file: file, log: log, cleanup: cleanup}
	if err := s.init(); err != nil {
		_ = cleanup()
		return nil, err
	}
	return s, nil
}

func (s *session) init() error {
	recorder, err := xmetrics.NewCacheRecorder(cacheName)
	if err != nil {
		return err
	}
	s.cache, err = xresult.New[json.RawMessage](s.cfg.Cache, xresult.WithRecorder(recorder))
	if err != nil {
		return newUsageError("缓存配置无效", err)
	}

	obs, err := xmetrics.NewOTelObserver()
	if err != nil {
		return err
	}
	s.writer, err = xreport.NewWriter(s.cfg.Report.Path, xreport.WithObserver(obs))
	if err != nil {
		return newUsageError("报告路径无效", err)
	}
	return nil
}

func (s *session) close() {
	_ = s.cleanup()
}

func newLogger(cfg logConfig, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevel(cfg.Level).
		SetFormat(cfg.Format)
	if cfg.File != "" {
		var opts []xrotate.Option
		if cfg.MaxSizeMB > 0 {
			opts = append(opts, xrotate.WithMaxSize(cfg.MaxSizeMB))
		}
		b.SetRotation(cfg.File, opts...)
	}
	return b.Build()
}

// writeReport 写出最近 Report.Count 条结果。
func (s *session) writeReport(ctx context.Context) error {
	path, err := s.writer.Write(ctx, xreport.Snapshot(s.cache, s.cfg.Report.Count))
	if err != nil {
		return err
	}
	s.log.Info(ctx, "report written", slog.String(xlog.KeyPath, path), slog.Int(xlog.KeyCount, s.cache.Len()))
	return nil
}

func cmdReport(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	in, closeInput, err := openInput(cmd.String(flagInput), cmd.Root().Reader)
	if err != nil {
		return err
	}
	defer closeInput()

	if err := ingest(ctx, in, s.cache, s.log); err != nil {
		return fmt.Errorf("读取输入失败: %w", err)
	}
	if err := s.writeReport(ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, s.writer.Path())
	return err
}

func cmdWatch(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	in, closeInput, err := openInput(cmd.String(flagInput), cmd.Root().Reader)
	if err != nil {
		return err
	}
	defer closeInput()

	services := []func(context.Context) error{
		readerService(in, s.cache, s.log),
		xrun.Cron(s.cfg.Report.Schedule, func(ctx context.Context) error {
			if err := s.writeReport(ctx); err != nil {
				s.log.Warn(ctx, "scheduled report failed", xlog.Err(err))
			}
			return nil
		}),
	}
	if s.cfg.Sweep > 0 {
		services = append(services, xrun.Ticker(s.cfg.Sweep, false, func(ctx context.Context) error {
			if n := s.cache.Sweep(); n > 0 {
				s.log.Debug(ctx, "expired results swept", slog.Int(xlog.KeyCount, n))
			}
			return nil
		}))
	}
	if s.file != nil {
		watcher, err := xconf.Watch(s.file, s.onConfigChange)
		if err != nil {
			return err
		}
		services = append(services, watcher.Run)
	}

	s.log.Info(ctx, "watching results",
		slog.Int("capacity", s.cache.Capacity()),
		slog.Duration("ttl", s.cache.TTL()),
		slog.String("schedule", s.cfg.Report.Schedule),
	)

	runErr := xrun.RunWithOptions(ctx, []xrun.Option{
		xrun.WithName("watch"),
		xrun.WithLogger(xlog.Slog(s.log)),
	}, services...)

	finalCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalReportTimeout)
	defer cancel()
	reportErr := s.writeReport(finalCtx)

	switch {
	case runErr == nil, errors.Is(runErr, errInputClosed), errors.Is(runErr, xrun.ErrSignal):
		if runErr != nil {
			s.log.Info(ctx, "watch stopped", slog.String("reason", runErr.Error()))
		}
		return reportErr
	default:
		return errors.Join(runErr, reportErr)
	}
}

// onConfigChange 在配置文件变化后重新应用日志级别。
// 缓存容量与 TTL 在运行期间不变。
func (s *session) onConfigChange(cfg xconf.Config, err error) {
	ctx := context.Background()
	if err != nil {
		s.log.Warn(ctx, "config reload failed", xlog.Err(err))
		return
	}

	var lc logConfig
	lc.Level = s.log.GetLevel()
	if err := cfg.Unmarshal("log", &lc); err != nil {
		s.log.Warn(ctx, "config reload failed", xlog.Err(err))
		return
	}
	if lc.Level != s.log.GetLevel() {
		s.log.SetLevel(lc.Level)
		s.log.Info(ctx, "log level changed", slog.String("level", lc.Level.String()))
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, newUsageError("打开输入文件失败", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// readerService 在后台读取输入；输入结束返回 errInputClosed 以停止其余服务。
// 阻塞在 stdin 上的读取无法被取消，ctx 取消时直接返回，不等待读取结束。
func readerService(r io.Reader, cache *xresult.Cache[json.RawMessage], log xlog.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan error, 1)
		go func() { done <- ingest(ctx, r, cache, log) }()

		select {
		case err := <-done:
			if err != nil {
				return fmt.Errorf("读取输入失败: %w", err)
			}
			return errInputClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ingest 逐行读取 NDJSON，把合法的 JSON 值写入缓存。空行忽略，非法行记录警告后跳过。
func ingest(ctx context.Context, r io.Reader, cache *xresult.Cache[json.RawMessage], log xlog.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if ctx.Err() != nil {
			return nil
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if !json.Valid(raw) {
			log.Warn(ctx, "skipping invalid result", slog.Int("line", line))
			continue
		}
		cache.Add(json.RawMessage(bytes.Clone(raw)))
	}
	return scanner.Err()
}
