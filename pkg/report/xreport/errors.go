package xreport

import "errors"

var (
	// ErrEmptyPath 表示报告路径为空。
	ErrEmptyPath = errors.New("xreport: empty report path")

	// ErrMarshal 表示 summary 无法序列化为 JSON。
	ErrMarshal = errors.New("xreport: marshal report")

	// ErrWrite 表示重试后报告仍未能写入。
	ErrWrite = errors.New("xreport: write report")
)
