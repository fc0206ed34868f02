package flog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ceyewan/flog"
	"github.com/ceyewan/flog/testkit"
	"github.com/ceyewan/flog/xerrors"
)

// TestFaultHandlerOrdering 故障处理器接管前，致命消息必须已抵达后端
func TestFaultHandlerOrdering(t *testing.T) {
	c := testkit.Install(t, nil)

	var (
		handlerRan     bool
		gotCode        int
		messagesBefore int
		delayUsable    bool
	)
	flog.SetFaultHandler(func(code int, diag any, delay func(time.Duration)) {
		handlerRan = true
		gotCode = code
		messagesBefore = len(c.Messages())
		delay(0)
		delayUsable = true
	})
	t.Cleanup(func() { flog.SetFaultHandler(nil) })

	flog.Panicf(42, flog.C("core"), "hard fault at %#x", 0xdeadbeef)

	if !handlerRan {
		t.Fatal("fault handler not invoked")
	}
	if gotCode != 42 {
		t.Errorf("code = %d, want 42", gotCode)
	}
	if messagesBefore != 1 {
		t.Fatalf("handler saw %d dispatched messages, want 1 (message before handler)", messagesBefore)
	}
	if !delayUsable {
		t.Error("delay primitive not usable inside handler")
	}

	m := c.Messages()[0]
	if m.Level != flog.LevelPanic {
		t.Errorf("level = %v, want %v", m.Level, flog.LevelPanic)
	}
	if m.Text != "hard fault at 0xdeadbeef" {
		t.Errorf("text = %q", m.Text)
	}
}

// TestPanicfWithoutHandler 未注册处理器时升级为携带故障码的 panic
func TestPanicfWithoutHandler(t *testing.T) {
	c := testkit.Install(t, nil)
	flog.SetFaultHandler(nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Panicf did not panic without a handler")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T, want error", r)
		}
		if got := xerrors.GetCode(err); got != "fault-7" {
			t.Errorf("fault code = %q, want %q", got, "fault-7")
		}
		var coded *xerrors.CodedError
		if !errors.As(err, &coded) {
			t.Error("panic value does not unwrap to CodedError")
		}
		// panic 发生前消息已经完成分发
		if len(c.Messages()) != 1 {
			t.Errorf("messages before panic = %d, want 1", len(c.Messages()))
		}
	}()

	flog.Panicf(7, flog.C("core"), "unhandled")
}

// TestFaultHandlerSuppressedLoggingStillEscalates 日志被抑制不影响故障升级
func TestFaultHandlerSuppressedLoggingStillEscalates(t *testing.T) {
	flog.ResetCallbacks()

	var handlerRan bool
	flog.SetFaultHandler(func(int, any, func(time.Duration)) { handlerRan = true })
	t.Cleanup(func() { flog.SetFaultHandler(nil) })

	flog.Panicf(1, flog.Category{}, "nobody listens")

	if !handlerRan {
		t.Fatal("fault handler skipped when logging is suppressed")
	}
}
