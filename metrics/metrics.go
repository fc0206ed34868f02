// Package metrics 为分发管线提供 Prometheus 观测。
//
// Instrument 以装饰器方式包装一个回调包：投递计数、字节计数和
// 抑制计数都在原回调前后打点，后端本身无需感知。计数发生在
// 调用方线程上，与门面同步语义一致。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ceyewan/flog"
)

const (
	// LabelLevel 级别标签名
	LabelLevel = "level"
	// LabelCategory 类别标签名，无类别记录计入 "<none>"
	LabelCategory = "category"
)

// Collector 分发指标集合
type Collector struct {
	messages   *prometheus.CounterVec
	bytes      prometheus.Counter
	suppressed prometheus.Counter
}

// Option 函数式选项，用于配置 Collector
type Option func(*options)

// options Collector 的内部选项
type options struct {
	registerer prometheus.Registerer
	namespace  string
}

// WithRegisterer 指定注册目标，默认 prometheus.DefaultRegisterer
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// WithNamespace 指定指标命名空间前缀，默认 "flog"
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// NewCollector 创建并注册分发指标
func NewCollector(opts ...Option) (*Collector, error) {
	o := &options{registerer: prometheus.DefaultRegisterer, namespace: "flog"}
	for _, opt := range opts {
		opt(o)
	}

	c := &Collector{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "messages_total",
			Help:      "Messages delivered to the backend, by level and category.",
		}, []string{LabelLevel, LabelCategory}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "bytes_written_total",
			Help:      "Raw bytes delivered through the write path.",
		}),
		suppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "suppressed_total",
			Help:      "Dispatch attempts rejected by the enabled predicate.",
		}),
	}

	for _, col := range []prometheus.Collector{c.messages, c.bytes, c.suppressed} {
		if err := o.registerer.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// categoryLabel 将类别映射为标签值
func categoryLabel(category flog.Category) string {
	if !category.Ok() {
		return "<none>"
	}
	return category.Name()
}

// Instrument 返回带指标打点的回调包
//
// 原回调包的 nil 槽位保持为 nil，不改变分发语义；唯一例外是
// Enabled 槽位：为了统计抑制次数，装饰后的判定总是存在，原判定
// 缺席时沿用门面的默认策略（任一输出回调存在即放行）。
func (c *Collector) Instrument(cb flog.Callbacks) flog.Callbacks {
	out := cb
	if cb.Message != nil {
		out.Message = func(text string, level flog.Level, category flog.Category, attr *flog.Attributes, res any) {
			c.messages.WithLabelValues(level.Name(), categoryLabel(category)).Inc()
			cb.Message(text, level, category, attr, res)
		}
	}
	if cb.Write != nil {
		out.Write = func(data []byte, level flog.Level, category flog.Category, res any) {
			c.messages.WithLabelValues(level.Name(), categoryLabel(category)).Inc()
			c.bytes.Add(float64(len(data)))
			cb.Write(data, level, category, res)
		}
	}
	out.Enabled = func(level flog.Level, category flog.Category, res any) bool {
		ok := false
		switch {
		case cb.Enabled != nil:
			ok = cb.Enabled(level, category, res)
		default:
			ok = cb.Message != nil || cb.Write != nil
		}
		if !ok {
			c.suppressed.Inc()
		}
		return ok
	}
	return out
}
