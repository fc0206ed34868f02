//go:build !flog_source_info

package flog

// sourceInfoEnabled 本构建不包含源码位置信息
const sourceInfoEnabled = false

// captureSource 在未启用 flog_source_info 时为空操作，随内联消失
func captureSource(attr *Attributes, skip int) {}
