//go:build flog_floor_warn

package flog

// compileTimeLevel 编译期级别下限，本构建剥离 LevelWarn 以下的调用点
const compileTimeLevel = LevelWarn

// CompileTimeLevel 返回当前构建的编译期级别下限
func CompileTimeLevel() Level {
	return compileTimeLevel
}
