//go:build !flog_floor_info && !flog_floor_warn && !flog_floor_error

package flog

// compileTimeLevel 编译期级别下限
//
// 低于该常量的调用点在构建时即被编译器折叠消除，而非运行时跳过。
// 默认值 LevelAll 表示不做任何编译期过滤；通过构建标签
// flog_floor_info / flog_floor_warn / flog_floor_error 可以整体剥离
// 低级别日志。这是本设施唯一的构建期过滤手段，其余过滤均在运行时完成。
const compileTimeLevel = LevelAll

// CompileTimeLevel 返回当前构建的编译期级别下限
func CompileTimeLevel() Level {
	return compileTimeLevel
}
