package backend

import (
	"context"
	"log/slog"

	"github.com/ceyewan/flog"
)

// Slog 桥接后端，将门面记录转发给 log/slog
//
// 级别启用判定委托给 slog.Handler，消息文本、类别和属性时间戳
// 作为结构化字段传递。原始写入以整块字节作为消息体转发。
type Slog struct {
	l *slog.Logger
}

// NewSlog 创建 slog 桥接后端，l 为 nil 时使用 slog.Default()
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{l: l}
}

// slogLevel 将门面级别映射为 slog 级别
func slogLevel(level flog.Level) slog.Level {
	switch {
	case level <= flog.LevelTrace:
		return slog.LevelDebug
	case level <= flog.LevelInfo:
		return slog.LevelInfo
	case level <= flog.LevelWarn:
		return slog.LevelWarn
	case level <= flog.LevelError:
		return slog.LevelError
	default:
		// PANIC 没有 slog 对应级别，抬高到 Error 之上
		return slog.LevelError + 4
	}
}

// Callbacks 返回指向本后端的回调包
func (b *Slog) Callbacks() flog.Callbacks {
	return flog.Callbacks{
		Message: b.message,
		Write:   b.write,
		Enabled: b.enabled,
	}
}

// Install 将本后端注册为进程后端
func (b *Slog) Install() {
	flog.SetCallbacks(b.Callbacks())
}

func (b *Slog) message(text string, level flog.Level, category flog.Category, attr *flog.Attributes, _ any) {
	attrs := make([]slog.Attr, 0, 3)
	if category.Ok() {
		attrs = append(attrs, slog.String("category", category.Name()))
	}
	if attr != nil {
		attrs = append(attrs, slog.Uint64("uptime_ms", uint64(attr.Time)))
		if attr.HasSource {
			attrs = append(attrs, slog.String("caller", attr.File))
		}
	}
	b.l.LogAttrs(context.Background(), slogLevel(level), text, attrs...)
}

func (b *Slog) write(data []byte, level flog.Level, category flog.Category, _ any) {
	attrs := make([]slog.Attr, 0, 1)
	if category.Ok() {
		attrs = append(attrs, slog.String("category", category.Name()))
	}
	b.l.LogAttrs(context.Background(), slogLevel(level), string(data), attrs...)
}

func (b *Slog) enabled(level flog.Level, category flog.Category, _ any) bool {
	return b.l.Enabled(context.Background(), slogLevel(level))
}
