//go:build !flog_disable

package flog

// Logf 生成一条带属性的格式化日志消息
//
// 按 printf 风格格式化，输出被限制在 MaxMessageLength 字节内，
// 超长静默截断。消息连同本次调用的属性记录（时间戳、可选源码位置）
// 一起投递给后端的消息回调。级别低于编译期下限的调用被构建剥离。
func Logf(level Level, category Category, format string, args ...any) {
	logf(level, category, format, args)
}

// Tracef 等价于 Logf(LevelTrace, ...)
func Tracef(category Category, format string, args ...any) {
	logf(LevelTrace, category, format, args)
}

// Infof 等价于 Logf(LevelInfo, ...)
func Infof(category Category, format string, args ...any) {
	logf(LevelInfo, category, format, args)
}

// Warnf 等价于 Logf(LevelWarn, ...)
func Warnf(category Category, format string, args ...any) {
	logf(LevelWarn, category, format, args)
}

// Errorf 等价于 Logf(LevelError, ...)
func Errorf(category Category, format string, args ...any) {
	logf(LevelError, category, format, args)
}

// logf 消息入口的公共实现，调用深度固定以保证源码位置捕获正确
func logf(level Level, category Category, format string, args []any) {
	if level < compileTimeLevel {
		return
	}
	attr := newAttributes()
	captureSource(&attr, 3)
	message(level, category, &attr, format, args)
}

// Write 将原始字节缓冲直接转发给后端的写入回调
//
// 不做格式化，facade 侧不复制；空缓冲是空操作。
func Write(level Level, category Category, data []byte) {
	if level < compileTimeLevel {
		return
	}
	write(level, category, data)
}

// Print 是 Write 对字符串的便捷形式
func Print(level Level, category Category, s string) {
	if level < compileTimeLevel {
		return
	}
	if s == "" {
		return
	}
	write(level, category, []byte(s))
}

// Printf 格式化后经写入路径直接投递
//
// 与 Logf 不同，本路径不构造属性记录，格式化结果作为原始数据
// 交给写入回调，输出同样受 MaxMessageLength 约束。
func Printf(level Level, category Category, format string, args ...any) {
	if level < compileTimeLevel {
		return
	}
	printfDirect(level, category, format, args)
}

// Dump 将数据按小写十六进制编码后经写入路径投递
//
// 大于分块容量的数据分多次投递，单个字节的两个 hex 字符
// 永远不会跨块。flags 保留未用。
func Dump(level Level, category Category, data []byte, flags int) {
	if level < compileTimeLevel {
		return
	}
	dump(level, category, data, flags)
}

// Enabled 报告 (level, category) 是否会通过完整门禁
//
// 只做判定，不格式化也不路由。调用方可借此避免为注定被抑制的
// 重型诊断付出参数构造成本：
//
//	if flog.Enabled(flog.LevelTrace, cat) {
//	    flog.Dump(flog.LevelTrace, cat, state.Snapshot(), 0)
//	}
func Enabled(level Level, category Category) bool {
	return enabledCheck(level, category)
}
