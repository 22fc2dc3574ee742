package main

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/resultcache/pkg/config/xconf"
	"github.com/omeyang/resultcache/pkg/lifecycle/xrun"
	"github.com/omeyang/resultcache/pkg/observability/xlog"
	"github.com/omeyang/resultcache/pkg/storage/xresult"
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagLogFile     = "log-file"
	flagInput       = "input"
	flagCapacity    = "capacity"
	flagTTL         = "ttl"
	flagReport      = "report"
	flagReportCount = "report-count"
	flagSchedule    = "schedule"
	flagSweep       = "sweep"
)

const (
	defaultCapacity    = 1000
	defaultReportPath  = "report.json"
	defaultReportCount = 100
	defaultSchedule    = "@every 1m"
)

// appConfig 是配置文件的结构，命令行参数覆盖同名字段。
//
//	cache:
//	  capacity: 500
//	  ttl: 10m
//	log:
//	  level: debug
//	report:
//	  path: out/report.json
//	  count: 50
//	  schedule: "*/5 * * * *"
//	sweep: 30s
type appConfig struct {
	Cache  xresult.Config `koanf:"cache"`
	Log    logConfig      `koanf:"log"`
	Report reportConfig   `koanf:"report"`
	Sweep  time.Duration  `koanf:"sweep"`
}

type logConfig struct {
	Level     xlog.Level `koanf:"level"`
	Format    string     `koanf:"format"`
	File      string     `koanf:"file"`
	MaxSizeMB int        `koanf:"max_size_mb"`
}

type reportConfig struct {
	Path     string `koanf:"path"`
	Count    int    `koanf:"count"`
	Schedule string `koanf:"schedule"`
}

func defaultConfig() appConfig {
	return appConfig{
		Cache: xresult.Config{Capacity: defaultCapacity},
		Log:   logConfig{Level: xlog.LevelInfo, Format: "text"},
		Report: reportConfig{
			Path:     defaultReportPath,
			Count:    defaultReportCount,
			Schedule: defaultSchedule,
		},
	}
}

// loadConfig 依次应用默认值、配置文件和显式设置的命令行参数，并校验结果。
// 未指定配置文件时返回的 xconf.Config 为 nil。
func loadConfig(cmd *cli.Command) (appConfig, xconf.Config, error) {
	cfg := defaultConfig()

	var file xconf.Config
	if path := cmd.String(flagConfig); path != "" {
		var err error
		file, err = xconf.New(path)
		if err != nil {
			return cfg, nil, newUsageError("加载配置文件失败", err)
		}
		if err := file.Unmarshal("", &cfg); err != nil {
			return cfg, nil, newUsageError("解析配置文件失败", err)
		}
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		return cfg, nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, nil, err
	}
	return cfg, file, nil
}

// applyFlags 只覆盖用户显式设置的参数，未设置的参数保留配置文件的值。
func applyFlags(cmd *cli.Command, cfg *appConfig) error {
	if cmd.IsSet(flagLogLevel) {
		level, err := xlog.ParseLevel(cmd.String(flagLogLevel))
		if err != nil {
			return newUsageError("--"+flagLogLevel, err)
		}
		cfg.Log.Level = level
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogFile) {
		cfg.Log.File = cmd.String(flagLogFile)
	}
	if cmd.IsSet(flagCapacity) {
		cfg.Cache.Capacity = cmd.Int(flagCapacity)
	}
	if cmd.IsSet(flagTTL) {
		cfg.Cache.TTL = cmd.Duration(flagTTL)
	}
	if cmd.IsSet(flagReport) {
		cfg.Report.Path = cmd.String(flagReport)
	}
	if cmd.IsSet(flagReportCount) {
		cfg.Report.Count = cmd.Int(flagReportCount)
	}
	if cmd.IsSet(flagSchedule) {
		cfg.Report.Schedule = cmd.String(flagSchedule)
	}
	if cmd.IsSet(flagSweep) {
		cfg.Sweep = cmd.Duration(flagSweep)
	}
	return nil
}

func validateConfig(cfg appConfig) error {
	if err := cfg.Cache.Validate(); err != nil {
		return newUsageError("缓存配置无效", err)
	}
	if cfg.Report.Path == "" {
		return newUsageError("报告路径不能为空", nil)
	}
	if cfg.Report.Count < 0 {
		return newUsageError("--"+flagReportCount+" 不能为负数", nil)
	}
	if cfg.Sweep < 0 {
		return newUsageError("--"+flagSweep+" 不能为负数", nil)
	}
	if err := xrun.ValidateCron(cfg.Report.Schedule); err != nil {
		return newUsageError("--"+flagSchedule, err)
	}
	return nil
}
