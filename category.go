package flog

import "sync/atomic"

// Category 标识日志消息的逻辑来源
//
// 类别是进程生命周期内不可变的字符串标记，按约定以 "." 分层
// （如 "system.network.dns"），与级别相互独立，用于细粒度过滤。
// 零值表示"无类别"，与空字符串类别是两种不同的状态：
//
//	flog.Category{}  // 无类别，回退到模块默认
//	flog.C("")       // 显式的空字符串类别
//
// 类别没有注册表，也没有层级对象，仅在调用点做词法解析。
type Category struct {
	name string
	ok   bool
}

// C 构造一个类别字面量
//
// 典型用法是在包级别声明一次，作为整个源文件的类别：
//
//	var logcat = flog.C("system.network")
func C(name string) Category {
	return Category{name: name, ok: true}
}

// Name 返回类别名称，无类别时返回空字符串
func (c Category) Name() string {
	return c.name
}

// Ok 报告类别是否被设置
//
// 区分"无类别"与空字符串类别的唯一依据。
func (c Category) Ok() bool {
	return c.ok
}

// String 实现 fmt.Stringer，无类别时返回 "<none>"
func (c Category) String() string {
	if !c.ok {
		return "<none>"
	}
	return c.name
}

// moduleCategoryName 模块默认类别名称
//
// 构建系统通过链接器注入，为整个模块指定默认类别：
//
//	go build -ldflags "-X github.com/ceyewan/flog.moduleCategoryName=app"
//
// 为空表示构建未指定模块类别。
var moduleCategoryName string

// moduleCategory 运行时模块默认类别，SetModuleCategory 可整体替换
var moduleCategory atomic.Pointer[Category]

func init() {
	if moduleCategoryName != "" {
		c := C(moduleCategoryName)
		moduleCategory.Store(&c)
	}
}

// SetModuleCategory 设置模块默认类别
//
// 覆盖构建期注入的值。传入零值 Category 表示清除模块类别。
// 与后端注册一样，这应当是启动阶段的罕见操作。
func SetModuleCategory(c Category) {
	if !c.ok {
		moduleCategory.Store(nil)
		return
	}
	moduleCategory.Store(&c)
}

// ModuleCategory 返回当前的模块默认类别
func ModuleCategory() Category {
	if c := moduleCategory.Load(); c != nil {
		return *c
	}
	return Category{}
}

// Resolve 按固定优先级解析调用点的生效类别
//
// 解析链为 作用域类别 > 源文件类别 > 模块类别，最具体者胜出。
// 三者均缺席时返回零值 Category（无类别），而非空字符串。
// 当实参是编译期常量时，该函数可被编译器折叠；否则退化为
// 普通的运行时条件链，语义完全相同。
func Resolve(scoped, source Category) Category {
	if scoped.ok {
		return scoped
	}
	if source.ok {
		return source
	}
	return ModuleCategory()
}
