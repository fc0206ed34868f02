//go:build flog_disable

package flog

// 本文件在 flog_disable 构建下生效：所有入口都是真正的空操作，
// 经内联后调用点不产生任何代码。延迟求值包装（Lazy）保证重型参数
// 在该构建下同样不会被求值。

// Logf 在禁用构建下为空操作
func Logf(level Level, category Category, format string, args ...any) {}

// Tracef 在禁用构建下为空操作
func Tracef(category Category, format string, args ...any) {}

// Infof 在禁用构建下为空操作
func Infof(category Category, format string, args ...any) {}

// Warnf 在禁用构建下为空操作
func Warnf(category Category, format string, args ...any) {}

// Errorf 在禁用构建下为空操作
func Errorf(category Category, format string, args ...any) {}

// logf 在禁用构建下为空操作，Panicf 经由它跳过日志但保留故障升级
func logf(level Level, category Category, format string, args []any) {}

// Write 在禁用构建下为空操作
func Write(level Level, category Category, data []byte) {}

// Print 在禁用构建下为空操作
func Print(level Level, category Category, s string) {}

// Printf 在禁用构建下为空操作
func Printf(level Level, category Category, format string, args ...any) {}

// Dump 在禁用构建下为空操作
func Dump(level Level, category Category, data []byte, flags int) {}

// Enabled 在禁用构建下恒为 false
func Enabled(level Level, category Category) bool {
	return false
}
