package flog

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ceyewan/flog/xerrors"
)

// FaultHandler 故障处理器
//
// 最高严重级别触发的外部协作者：接收故障码、可选诊断数据和一个
// 延迟原语。处理器可能不再返回（复位、停机）。
type FaultHandler func(code int, diag any, delay func(time.Duration))

var faultHandler atomic.Pointer[FaultHandler]

// SetFaultHandler 注册故障处理器
//
// 传入 nil 清除注册。未注册时 Panicf 退化为携带故障码的 Go panic。
func SetFaultHandler(h FaultHandler) {
	if h == nil {
		faultHandler.Store(nil)
		return
	}
	faultHandler.Store(&h)
}

// Panicf 记录致命消息并升级为故障
//
// 顺序保证：消息先以 LevelPanic 完成分发，故障处理器之后才接管。
// 致命条件的诊断信息因此总能先于处理器到达后端。即使日志在构建期
// 被整体禁用，故障升级本身仍然发生。
func Panicf(code int, category Category, format string, args ...any) {
	logf(LevelPanic, category, format, args)
	if h := faultHandler.Load(); h != nil {
		(*h)(code, nil, time.Sleep)
		return
	}
	panic(xerrors.WithCode(fmt.Errorf("unhandled fault"), fmt.Sprintf("fault-%d", code)))
}
