// Package filter 提供基于类别前缀的级别过滤器。
//
// 类别按约定以 "." 分层（如 "system.network.dns"），过滤器为不同的
// 类别子树设置独立的级别阈值，产出可直接注册的启用判定回调。
package filter

import (
	"sort"
	"strings"

	"github.com/ceyewan/flog"
)

// Rule 一条类别阈值规则
//
// Category 匹配自身及其全部子类别（按 "." 边界做前缀匹配）。
type Rule struct {
	Category string
	Level    flog.Level
}

// Filter 不可变的类别级别过滤器
//
// 构造完成后只读，不加锁，可在任意受限上下文中执行判定。
type Filter struct {
	defaultLevel flog.Level
	rules        []Rule
}

// New 创建过滤器
//
// defaultLevel 作用于无类别消息和未命中任何规则的类别。
// 多条规则命中同一类别时，最长（最具体）的前缀胜出。
func New(defaultLevel flog.Level, rules ...Rule) *Filter {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	// 规则按前缀长度降序排列，判定时首个命中即最具体
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Category) > len(sorted[j].Category)
	})
	return &Filter{defaultLevel: defaultLevel, rules: sorted}
}

// Enabled 报告 (level, category) 是否通过过滤
func (f *Filter) Enabled(level flog.Level, category flog.Category) bool {
	return level >= f.threshold(category)
}

// threshold 返回类别生效的级别阈值
func (f *Filter) threshold(category flog.Category) flog.Level {
	if !category.Ok() {
		return f.defaultLevel
	}
	name := category.Name()
	for _, r := range f.rules {
		if matches(name, r.Category) {
			return r.Level
		}
	}
	return f.defaultLevel
}

// matches 报告 name 是否等于 prefix 或位于其子树内
func matches(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	return len(name) == len(prefix) || name[len(prefix)] == '.'
}

// Func 返回可注册到回调包的启用判定
func (f *Filter) Func() flog.EnabledFunc {
	return func(level flog.Level, category flog.Category, _ any) bool {
		return f.Enabled(level, category)
	}
}
