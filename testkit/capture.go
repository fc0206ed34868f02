// Package testkit 提供 flog 测试共用的捕获后端与小工具。
package testkit

import (
	"sync"

	"github.com/ceyewan/flog"
)

// MessageRecord 一次消息回调的完整快照
type MessageRecord struct {
	Text     string
	Level    flog.Level
	Category flog.Category
	Attr     flog.Attributes
	Reserved any
}

// WriteRecord 一次写入回调的完整快照
type WriteRecord struct {
	Data     []byte
	Level    flog.Level
	Category flog.Category
	Reserved any
}

// Capture 记录全部后端回调调用的测试后端
//
// 回调内对数据做深拷贝，跨回调持有是安全的。所有方法并发安全。
type Capture struct {
	mu       sync.Mutex
	messages []MessageRecord
	writes   []WriteRecord
	enabled  func(level flog.Level, category flog.Category) bool
}

// NewCapture 创建捕获后端，默认放行所有级别与类别
func NewCapture() *Capture {
	return &Capture{}
}

// SetEnabled 设置启用判定，nil 恢复为全部放行
func (c *Capture) SetEnabled(fn func(level flog.Level, category flog.Category) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = fn
}

// Callbacks 返回指向本捕获器的回调包
//
// reserved 原样进入每条记录，属性记录按值复制。
func (c *Capture) Callbacks(reserved any) flog.Callbacks {
	return flog.Callbacks{
		Message: func(text string, level flog.Level, category flog.Category, attr *flog.Attributes, res any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			rec := MessageRecord{Text: text, Level: level, Category: category, Reserved: res}
			if attr != nil {
				rec.Attr = *attr
			}
			c.messages = append(c.messages, rec)
		},
		Write: func(data []byte, level flog.Level, category flog.Category, res any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			buf := make([]byte, len(data))
			copy(buf, data)
			c.writes = append(c.writes, WriteRecord{Data: buf, Level: level, Category: category, Reserved: res})
		},
		Enabled: func(level flog.Level, category flog.Category, res any) bool {
			c.mu.Lock()
			fn := c.enabled
			c.mu.Unlock()
			if fn == nil {
				return true
			}
			return fn(level, category)
		},
		Reserved: reserved,
	}
}

// WriteOnlyCallbacks 返回只含写入回调的回调包，用于交叉接线测试
func (c *Capture) WriteOnlyCallbacks(reserved any) flog.Callbacks {
	cb := c.Callbacks(reserved)
	cb.Message = nil
	cb.Enabled = nil
	return cb
}

// Messages 返回已捕获消息的副本
func (c *Capture) Messages() []MessageRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]MessageRecord, len(c.messages))
	copy(out, c.messages)
	return out
}

// Writes 返回已捕获写入的副本
func (c *Capture) Writes() []WriteRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]WriteRecord, len(c.writes))
	copy(out, c.writes)
	return out
}

// WrittenText 将全部写入记录按序拼接为字符串
//
// 校验分块投递（如十六进制转储）的整体输出时使用。
func (c *Capture) WrittenText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []byte
	for _, w := range c.writes {
		out = append(out, w.Data...)
	}
	return string(out)
}

// Count 返回消息与写入回调的总调用次数
func (c *Capture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) + len(c.writes)
}

// Reset 清空全部记录
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.writes = nil
}
