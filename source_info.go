//go:build flog_source_info

package flog

import (
	"path/filepath"
	"runtime"
)

// sourceInfoEnabled 本构建包含源码位置信息
const sourceInfoEnabled = true

// captureSource 填充调用点的源码位置字段
//
// skip 语义与 runtime.Caller 一致，0 表示 captureSource 自身。
// 文件路径裁剪为基础名，避免把构建机目录泄漏进日志。
func captureSource(attr *Attributes, skip int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return
	}
	attr.File = filepath.Base(file)
	attr.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		attr.Function = fn.Name()
	}
	attr.HasSource = true
}
