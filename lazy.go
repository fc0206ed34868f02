package flog

import "fmt"

// 延迟求值
//
// 日志参数计算开销较大时，用 Lazy 系列包装可以把求值推迟到真正
// 格式化的那一刻：级别被门禁拦下、后端未注册、或整个设施在构建期
// 被禁用时，包装的函数永远不会执行。简单值不需要包装。

// lazyString 延迟求值的字符串参数
type lazyString func() string

// String 实现 fmt.Stringer，仅在格式化时触发求值
func (f lazyString) String() string {
	return f()
}

// LazyString 包装一个延迟求值的字符串参数
//
// 示例：
//
//	flog.Tracef(cat, "route table: %v", flog.LazyString(table.Dump))
func LazyString(fn func() string) fmt.Stringer {
	return lazyString(fn)
}

// lazyValue 延迟求值的通用参数
type lazyValue struct {
	fn func() any
}

// String 实现 fmt.Stringer，仅在格式化时触发求值
func (l lazyValue) String() string {
	return fmt.Sprint(l.fn())
}

// Lazy 包装一个延迟求值的任意参数
func Lazy(fn func() any) fmt.Stringer {
	return lazyValue{fn: fn}
}
