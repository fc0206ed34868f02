// Package flog 提供一个极简、省分配的日志门面。
// 调用点只声明"记什么、以什么身份记"（级别 + 类别 + 调用点属性），
// 实际落地由运行时注册的后端回调决定，门面自身没有任何内建输出。
//
// 特性：
//   - 级别与类别双维度过滤，类别按 作用域 > 源文件 > 模块 三级解析
//   - 后端以回调包整体原子注册，热路径无锁，可在受限上下文中调用
//   - 全部格式化使用调用方栈上的定长缓冲，分发路径零堆分配
//   - 编译期级别下限与整体禁用开关通过构建标签实现，调用点真正消失
//
// 基本使用：
//
//	var logcat = flog.C("app.network")
//
//	func handle() {
//	    flog.Infof(logcat, "connected to %s", addr)
//	    flog.Dump(flog.LevelTrace, logcat, frame, 0)
//	}
//
// 注册后端（未注册时所有日志被静默抑制）：
//
//	flog.SetCallbacks(flog.Callbacks{
//	    Write: func(data []byte, level flog.Level, c flog.Category, _ any) {
//	        os.Stderr.Write(data)
//	    },
//	})
//
// 现成的后端、过滤器和配置装载见子包 backend、filter、config。
package flog

// SourceInfoIncluded 报告本构建是否捕获源码位置信息
//
// 由 flog_source_info 构建标签决定。
func SourceInfoIncluded() bool {
	return sourceInfoEnabled
}
