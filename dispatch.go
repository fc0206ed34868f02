package flog

import (
	"fmt"
	"io"
)

// MaxMessageLength 单条格式化消息的最大字节数
//
// 超长输出被静默截断到该长度，最后一个字节替换为 '~' 作为截断标记。
// 截断不是错误，不会向调用方报告。
const MaxMessageLength = 160

// dumpChunkSize 十六进制转储的分块长度
//
// 保持偶数，保证每个字节的两个 hex 字符永远落在同一块内。
const dumpChunkSize = MaxMessageLength / 2 * 2

const hexDigits = "0123456789abcdef"

// boundedWriter 定长栈上缓冲区
//
// 分发路径的全部格式化都经由它完成：容量固定、不做堆分配、
// 溢出静默。对 fmt 始终报告全量写入成功，让格式化正常跑完。
type boundedWriter struct {
	buf      [MaxMessageLength]byte
	n        int
	overflow bool
}

var _ io.Writer = (*boundedWriter)(nil)

func (w *boundedWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		w.overflow = true
	}
	return len(p), nil
}

func (w *boundedWriter) WriteString(s string) (int, error) {
	n := copy(w.buf[w.n:], s)
	w.n += n
	if n < len(s) {
		w.overflow = true
	}
	return len(s), nil
}

// bytes 返回缓冲内容，溢出时末位写入截断标记
func (w *boundedWriter) bytes() []byte {
	if w.overflow && w.n > 0 {
		w.buf[w.n-1] = '~'
	}
	return w.buf[:w.n]
}

// message 消息路径：格式化后经消息回调投递
//
// 消息回调缺席而写入回调存在时，按行式布局渲染
// （毫秒时间戳、可选源码位置、可选类别、级别名、消息、CRLF）
// 改走写入路径，使只实现了写入回调的后端同样能收到消息。
// 两个回调都缺席时整条消息被吞掉。
func message(level Level, category Category, attr *Attributes, format string, args []any) {
	cb := currentCallbacks()
	if cb == nil || !runtimeEnabled(cb, level, category) {
		return
	}
	switch {
	case cb.Message != nil:
		var w boundedWriter
		fmt.Fprintf(&w, format, args...)
		cb.Message(string(w.bytes()), level, category, attr, cb.Reserved)
	case cb.Write != nil:
		var w boundedWriter
		fmt.Fprintf(&w, "%010d ", attr.Time)
		if attr.HasSource {
			fmt.Fprintf(&w, "%s:%d, %s: ", attr.File, attr.Line, attr.Function)
		}
		if category.Ok() {
			fmt.Fprintf(&w, "[%s] ", category.Name())
		}
		w.WriteString(level.Name())
		w.WriteString(": ")
		fmt.Fprintf(&w, format, args...)
		w.WriteString("\r\n")
		cb.Write(w.bytes(), level, category, cb.Reserved)
	}
}

// write 原始路径：缓冲区原样转发给写入回调
func write(level Level, category Category, data []byte) {
	if len(data) == 0 {
		return
	}
	cb := currentCallbacks()
	if cb == nil || cb.Write == nil {
		return
	}
	if !runtimeEnabled(cb, level, category) {
		return
	}
	cb.Write(data, level, category, cb.Reserved)
}

// printfDirect 直写路径：有界格式化后经写入回调投递，不构造属性
func printfDirect(level Level, category Category, format string, args []any) {
	cb := currentCallbacks()
	if cb == nil || cb.Write == nil {
		return
	}
	if !runtimeEnabled(cb, level, category) {
		return
	}
	var w boundedWriter
	fmt.Fprintf(&w, format, args...)
	if w.n == 0 {
		return
	}
	cb.Write(w.bytes(), level, category, cb.Reserved)
}

// dump 将数据编码为小写十六进制并分块经写入路径投递
//
// 块满即冲刷，字节的两个 hex 字符不会被块边界拆开；flags 保留未用。
func dump(level Level, category Category, data []byte, flags int) {
	if len(data) == 0 {
		return
	}
	cb := currentCallbacks()
	if cb == nil || cb.Write == nil {
		return
	}
	if !runtimeEnabled(cb, level, category) {
		return
	}
	var buf [dumpChunkSize]byte
	n := 0
	for _, b := range data {
		buf[n] = hexDigits[b>>4]
		buf[n+1] = hexDigits[b&0x0f]
		n += 2
		if n == len(buf) {
			cb.Write(buf[:n], level, category, cb.Reserved)
			n = 0
		}
	}
	if n > 0 {
		cb.Write(buf[:n], level, category, cb.Reserved)
	}
}

// enabledCheck 完整的门禁判定：编译期下限与运行时判定的合取
func enabledCheck(level Level, category Category) bool {
	if level < compileTimeLevel {
		return false
	}
	cb := currentCallbacks()
	if cb == nil {
		return false
	}
	return runtimeEnabled(cb, level, category)
}
