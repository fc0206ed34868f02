package flog

import "sync/atomic"

// MessageFunc 消息回调，接收格式化完成的文本及其上下文
//
// text 与 attr 均为调用方栈上的数据，仅在回调执行期间有效，
// 跨调用持有需要后端自行复制。
type MessageFunc func(text string, level Level, category Category, attr *Attributes, reserved any)

// WriteFunc 原始写入回调，data 不经任何格式化原样转发
//
// data 的生命周期同样以回调返回为界。
type WriteFunc func(data []byte, level Level, category Category, reserved any)

// EnabledFunc 启用判定回调，决定 (level, category) 是否放行
type EnabledFunc func(level Level, category Category, reserved any) bool

// Callbacks 后端回调包
//
// 三个槽位均可为 nil，nil 槽位按文档化的默认策略退化：
//   - Message 为 nil 而 Write 存在时，消息路径改走写入路径（见 Logf）
//   - Enabled 为 nil 时，只要任一回调存在即视为放行
//
// Reserved 是不透明指针，分发时原样传给每个回调，常用于后端自身状态。
type Callbacks struct {
	Message  MessageFunc
	Write    WriteFunc
	Enabled  EnabledFunc
	Reserved any
}

// registry 进程级后端注册槽
//
// 整包原子替换：分发路径每次调用只 Load 一次，看到的要么是完整的
// 旧包、要么是完整的新包，绝不会出现新旧字段混杂。热路径上除这一次
// 原子读外不持有任何锁，因此可以在受限上下文（如故障处理器）中调用。
var registry atomic.Pointer[Callbacks]

// SetCallbacks 整体替换后端回调
//
// 一次调用替换全部三个槽位，没有部分更新；并发注册时后写者胜出。
// 注册应当是启动阶段的罕见操作。传入的结构体会被复制，调用方之后
// 修改原值不影响已注册的回调包。
func SetCallbacks(cb Callbacks) {
	c := cb
	registry.Store(&c)
}

// ResetCallbacks 清除后端注册，恢复到未配置状态
//
// 未配置状态下所有日志调用被静默吞掉，这不是错误。
func ResetCallbacks() {
	registry.Store(nil)
}

// currentCallbacks 读取当前回调包，未注册时返回 nil
func currentCallbacks() *Callbacks {
	return registry.Load()
}

// runtimeEnabled 运行时启用判定
//
// 有判定回调时由其裁决；没有判定回调但注册了任一输出回调时放行，
// 让最简单的写入后端开箱即用。
func runtimeEnabled(cb *Callbacks, level Level, category Category) bool {
	if cb.Enabled != nil {
		return cb.Enabled(level, category, cb.Reserved)
	}
	return cb.Message != nil || cb.Write != nil
}
