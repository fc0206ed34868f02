//go:build flog_floor_error

package flog

// compileTimeLevel 编译期级别下限，本构建剥离 LevelError 以下的调用点
const compileTimeLevel = LevelError

// CompileTimeLevel 返回当前构建的编译期级别下限
func CompileTimeLevel() Level {
	return compileTimeLevel
}
