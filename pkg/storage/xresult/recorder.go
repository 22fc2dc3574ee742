package xresult

//go:generate mockgen -source=recorder.go -destination=mock_recorder_test.go -package=xresult

// 淘汰原因，作为 Recorder.RecordEviction 的 reason 参数。
const (
	// ReasonCapacity 容量溢出导致的淘汰。
	ReasonCapacity = "capacity"
	// ReasonTTL 过期裁剪导致的淘汰。
	ReasonTTL = "ttl"
	// ReasonClear Clear 导致的移除。
	ReasonClear = "clear"
)

// Recorder 接收缓存事件，用于指标上报。
type Recorder interface {
	// RecordAdd 记录一次写入。
	RecordAdd()
	// RecordEviction 记录 n 条被移除的条目。
	RecordEviction(reason string, n int)
	// RecordRead 记录一次读取返回的条目数。
	RecordRead(n int)
}

type noopRecorder struct{}

func (noopRecorder) RecordAdd()                 {}
func (noopRecorder) RecordEviction(string, int) {}
func (noopRecorder) RecordRead(int)             {}
