package xreport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/resultcache/pkg/observability/xmetrics"
	"github.com/omeyang/resultcache/pkg/util/xfile"
)

// Envelope 是报告文件的顶层结构。
type Envelope struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Summary   any    `json:"summary"`
}

// Writer 将报告写入固定路径，每次写入覆盖上一份。
// Writer 可被多个 goroutine 并发使用，并发写入以最后一次 rename 为准。
type Writer struct {
	path     string
	attempts uint
	delay    time.Duration
	newID    func() string
	clock    func() time.Time
	observer xmetrics.Observer
	write    func(path string, data []byte) error
}

// NewWriter 创建写入 path 的 Writer。path 为空或不是合法文件路径时返回错误。
func NewWriter(path string, opts ...Option) (*Writer, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	clean, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, fmt.Errorf("xreport: invalid path %q: %w", path, err)
	}

	w := defaultWriter(clean)
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Path 返回报告文件路径。
func (w *Writer) Path() string {
	return w.path
}

// Write 将 summary 包装为 Envelope 写入文件，返回文件路径。
//
// 序列化失败立即返回 ErrMarshal；写入失败按配置重试，
// 全部失败后返回包装了最后一个错误的 ErrWrite。ctx 取消会中止重试。
func (w *Writer) Write(ctx context.Context, summary any) (path string, err error) {
	ctx, span := xmetrics.Start(ctx, w.observer, xmetrics.SpanOptions{
		Component: "xreport",
		Operation: "write",
		Kind:      xmetrics.KindClient,
		Attrs:     []xmetrics.Attr{xmetrics.String("path", w.path)},
	})
	attempts := 0
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Int("attempts", attempts)}})
	}()

	data, err := Encode(Envelope{
		ID:        w.newID(),
		Timestamp: w.clock().Format(time.RFC3339Nano),
		Summary:   summary,
	})
	if err != nil {
		return "", err
	}

	err = retry.New(
		retry.Context(ctx),
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	).Do(func() error {
		attempts++
		return w.write(w.path, data)
	})
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWrite, w.path, err)
	}
	return w.path, nil
}

// Encode 将 Envelope 序列化为缩进 JSON（不转义 HTML，结尾带换行）。
func Encode(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	err := xfile.WriteFileAtomic(path, data, xfile.DefaultFilePerm)
	if errors.Is(err, xfile.ErrInvalidPath) || errors.Is(err, xfile.ErrNullByte) || errors.Is(err, os.ErrPermission) {
		return retry.Unrecoverable(err)
	}
	return err
}
