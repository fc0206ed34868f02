// Package backend 提供可直接注册的参考后端。
//
// 门面本身没有内建输出，本包给出两个最常用的落地实现：
// 面向 io.Writer 的行式后端，以及转发给 log/slog 的桥接后端。
// 两者都是同步后端，写入发生在调用方线程上。
package backend

import (
	"fmt"
	"io"
	"sync"

	"github.com/ceyewan/flog"
)

// Writer 行式输出后端
//
// 消息按 "毫秒时间戳 [类别] 级别: 文本" 布局渲染为单行；
// 原始写入不加修饰直接落盘。内部互斥锁保证多线程写入不交错，
// 因此不要在无法阻塞的上下文中使用本后端。
type Writer struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel flog.Level
}

// WriterOption Writer 后端的函数式选项
type WriterOption func(*Writer)

// WithMinLevel 设置后端放行的最低级别，默认 LevelAll
func WithMinLevel(level flog.Level) WriterOption {
	return func(w *Writer) {
		w.minLevel = level
	}
}

// NewWriter 创建行式输出后端
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	b := &Writer{w: w, minLevel: flog.LevelAll}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Callbacks 返回指向本后端的回调包
func (b *Writer) Callbacks() flog.Callbacks {
	return flog.Callbacks{
		Message: b.message,
		Write:   b.write,
		Enabled: b.enabled,
	}
}

// Install 将本后端注册为进程后端
func (b *Writer) Install() {
	flog.SetCallbacks(b.Callbacks())
}

func (b *Writer) message(text string, level flog.Level, category flog.Category, attr *flog.Attributes, _ any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var millis uint32
	if attr != nil {
		millis = attr.Time
	}
	fmt.Fprintf(b.w, "%010d ", millis)
	if attr != nil && attr.HasSource {
		fmt.Fprintf(b.w, "%s:%d, %s: ", attr.File, attr.Line, attr.Function)
	}
	if category.Ok() {
		fmt.Fprintf(b.w, "[%s] ", category.Name())
	}
	fmt.Fprintf(b.w, "%s: %s\n", level.Name(), text)
}

func (b *Writer) write(data []byte, level flog.Level, category flog.Category, _ any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.w.Write(data)
}

func (b *Writer) enabled(level flog.Level, category flog.Category, _ any) bool {
	return level >= b.minLevel
}
