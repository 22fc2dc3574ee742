// xresultctl 在内存中保留最近的任务结果，并定期写出 JSON 报告。
//
// 用法:
//
//	xresultctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      YAML/JSON 配置文件，命令行参数优先于配置文件
//	    --log-level   日志级别 (debug/info/warn/error)
//	    --log-format  日志格式 (text/json)
//	    --log-file    日志文件（按大小轮转），默认输出到 stderr
//
// 命令:
//
//	watch     从输入流读取 NDJSON 结果，按 cron 计划写报告，退出时再写一次
//	report    一次性读取 NDJSON 文件并写报告，输出报告路径
//	version   显示版本信息
//
// 退出码:
//
//	0: 成功（包括 watch 因输入结束或收到信号而退出）
//	1: 运行时错误
//	2: 参数或配置错误
//
// 示例:
//
//	tail -f results.ndjson | xresultctl watch --capacity 500 --ttl 10m --schedule "@every 30s"
//	xresultctl -c xresult.yaml watch --input results.ndjson
//	xresultctl report --input results.ndjson --report out/report.json --report-count 20
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags "-X main.Version=..." 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func createApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xresultctl",
		Usage:     "有界 TTL 结果缓存与报告工具",
		Version:   versionString(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "日志文件路径，为空时输出到 stderr",
			},
		},
		Commands: []*cli.Command{
			createWatchCommand(),
			createReportCommand(),
			createVersionCommand(),
		},
		// 由 run() 统一输出错误并映射退出码，不让 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp(stdin, stdout, stderr)

	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// usageError 表示参数或配置错误，退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(msg string, err error) error {
	return &usageError{msg: msg, err: err}
}

// isCLIUsageError 识别 urfave/cli 在解析阶段产生的错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"No help topic for",
		"Required flag",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
