package flog

import (
	"sync/atomic"
	"time"
)

// attrVersion Attributes 结构的格式版本号
const attrVersion = 1

// Attributes 每次日志调用的元数据记录
//
// 在调用方栈上按次构造，随调用结束销毁，不会逃逸出分发路径。
// 源码位置字段仅在启用 flog_source_info 构建标签时填充，
// 否则保持显式的空缺状态（HasSource 为 false），而非零值垃圾。
type Attributes struct {
	Version   uint32 // 格式版本标记
	Flags     uint32 // 保留字段
	File      string // 源文件名（可为空）
	Line      int    // 行号
	Function  string // 函数名（可为空）
	HasSource bool   // 源码位置字段是否有效
	Time      uint32 // 启动以来经过的毫秒数
}

// TimeSource 返回启动以来经过的毫秒数
//
// 必须单调，且可在任意受限上下文中调用（不加锁、不阻塞）。
type TimeSource func() uint32

var startupTime = time.Now()

// defaultTimeSource 基于 time.Since 的单调毫秒时钟
func defaultTimeSource() uint32 {
	return uint32(time.Since(startupTime).Milliseconds())
}

var timeSource atomic.Pointer[TimeSource]

// SetTimeSource 注入自定义时间源
//
// 传入 nil 恢复默认时钟。典型用途是测试和无标准时钟的运行环境。
func SetTimeSource(ts TimeSource) {
	if ts == nil {
		timeSource.Store(nil)
		return
	}
	timeSource.Store(&ts)
}

// now 读取当前时间源
func now() uint32 {
	if ts := timeSource.Load(); ts != nil {
		return (*ts)()
	}
	return defaultTimeSource()
}

// newAttributes 初始化一条日志调用的属性记录
//
// 除读取时间源外没有任何副作用：不分配堆内存，不会失败。
func newAttributes() Attributes {
	return Attributes{Version: attrVersion, Time: now()}
}
