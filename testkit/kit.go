package testkit

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ceyewan/flog"
)

// Install 注册捕获后端并在测试结束时清理注册与时间源
//
// 返回的捕获器即注册的后端；reserved 透传进回调包。
func Install(t *testing.T, reserved any) *Capture {
	t.Helper()
	c := NewCapture()
	flog.SetCallbacks(c.Callbacks(reserved))
	t.Cleanup(func() {
		flog.ResetCallbacks()
		flog.SetTimeSource(nil)
	})
	return c
}

// FixedClock 返回恒定毫秒值的时间源，用于断言属性时间戳
func FixedClock(millis uint32) flog.TimeSource {
	return func() uint32 { return millis }
}

// NewID 返回一个唯一的测试 ID (UUID v4 前 8 位)
// 用于生成互不冲突的类别名，避免并发测试间相互干扰
func NewID() string {
	return uuid.New().String()[0:8]
}
