package flog

import (
	"fmt"
	"strings"
)

// Level 日志级别类型
//
// 级别是有序整数，数值越大严重程度越高：
//
//	LevelTrace: 细粒度调试信息
//	LevelInfo:  正常业务流程信息
//	LevelWarn:  潜在问题警告
//	LevelError: 可恢复的错误
//	LevelPanic: 致命故障，分发后移交故障处理器
//	LevelNone:  哨兵值，表示不记录任何消息
//
// 数值间隔刻意留空，便于外部后端在级别之间插入自定义阈值。
type Level int

const (
	LevelAll   Level = 1 // 记录全部消息，与 LevelTrace 等值
	LevelTrace Level = 1
	LevelInfo  Level = 30
	LevelWarn  Level = 40
	LevelError Level = 50
	LevelPanic Level = 60
	LevelNone  Level = 70 // 哨兵值，任何消息都不会通过
)

// 兼容别名，解析结果与上面的常量完全一致
const (
	LevelDefault Level = 0
	LevelLog     Level = LevelTrace // Deprecated: 使用 LevelTrace
	LevelDebug   Level = LevelTrace // Deprecated: 使用 LevelTrace
)

// AtLeast 报告级别 l 是否达到阈值 threshold（数值比较）
func (l Level) AtLeast(threshold Level) bool {
	return l >= threshold
}

// Name 返回级别的静态名称
//
// 未定义的级别值返回 "UNKNOWN"。
func (l Level) Name() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelPanic:
		return "PANIC"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// String 实现 fmt.Stringer
func (l Level) String() string {
	return l.Name()
}

// ParseLevel 将字符串解析为 Level
//
// 支持的字符串（不区分大小写）：
//
//	"all", "trace", "info", "warn", "error", "panic", "none"
//
// 无法解析时返回 LevelInfo 和错误信息。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "all", "trace":
		return LevelTrace, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "panic":
		return LevelPanic, nil
	case "none":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
