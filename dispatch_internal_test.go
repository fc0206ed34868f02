package flog

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// TestBoundedWriterTruncation 测试定长缓冲的截断行为
func TestBoundedWriterTruncation(t *testing.T) {
	var w boundedWriter
	fmt.Fprintf(&w, "%s", strings.Repeat("x", MaxMessageLength*2))

	out := w.bytes()
	if len(out) != MaxMessageLength {
		t.Fatalf("len = %d, want exactly %d", len(out), MaxMessageLength)
	}
	if out[len(out)-1] != '~' {
		t.Errorf("last byte = %q, want '~' truncation marker", out[len(out)-1])
	}
	for i := 0; i < len(out)-1; i++ {
		if out[i] != 'x' {
			t.Fatalf("byte %d = %q, want 'x'", i, out[i])
		}
	}
}

// TestBoundedWriterGuardBytes 测试溢出写入不越过缓冲边界
func TestBoundedWriterGuardBytes(t *testing.T) {
	// 缓冲区两侧布置哨兵字节，任何越界写入都会破坏哨兵
	var box struct {
		lo [16]byte
		w  boundedWriter
		hi [16]byte
	}
	for i := range box.lo {
		box.lo[i] = 0xAA
		box.hi[i] = 0xAA
	}

	fmt.Fprintf(&box.w, "%s", strings.Repeat("y", MaxMessageLength*4))
	box.w.WriteString("tail after overflow")
	box.w.bytes()

	for i := range box.lo {
		if box.lo[i] != 0xAA || box.hi[i] != 0xAA {
			t.Fatalf("guard byte %d corrupted: lo=%x hi=%x", i, box.lo[i], box.hi[i])
		}
	}
}

// TestBoundedWriterNoTruncationMarkerWhenFits 测试未溢出时不写入标记
func TestBoundedWriterNoTruncationMarkerWhenFits(t *testing.T) {
	var w boundedWriter
	fmt.Fprintf(&w, "short message")

	if got := string(w.bytes()); got != "short message" {
		t.Errorf("bytes() = %q, want %q", got, "short message")
	}
}

// TestBoundedWriterExactFit 测试恰好填满缓冲不视为溢出
func TestBoundedWriterExactFit(t *testing.T) {
	var w boundedWriter
	w.WriteString(strings.Repeat("z", MaxMessageLength))

	out := w.bytes()
	if len(out) != MaxMessageLength {
		t.Fatalf("len = %d, want %d", len(out), MaxMessageLength)
	}
	if out[len(out)-1] != 'z' {
		t.Errorf("exact fit must not carry a truncation marker, got %q", out[len(out)-1])
	}
}

// TestDumpChunkSizeEven 十六进制分块必须为偶数，保证字节对不跨块
func TestDumpChunkSizeEven(t *testing.T) {
	if dumpChunkSize%2 != 0 {
		t.Fatalf("dumpChunkSize = %d, want even", dumpChunkSize)
	}
	if dumpChunkSize <= 0 || dumpChunkSize > MaxMessageLength {
		t.Fatalf("dumpChunkSize = %d out of range", dumpChunkSize)
	}
}

// TestRuntimeEnabledDefaults 测试判定回调缺席时的默认策略
func TestRuntimeEnabledDefaults(t *testing.T) {
	discard := func([]byte, Level, Category, any) {}

	tests := []struct {
		name string
		cb   Callbacks
		want bool
	}{
		{"no slots at all", Callbacks{}, false},
		{"write slot only", Callbacks{Write: discard}, true},
		{"message slot only", Callbacks{Message: func(string, Level, Category, *Attributes, any) {}}, true},
		{"predicate overrides to false", Callbacks{Write: discard, Enabled: func(Level, Category, any) bool { return false }}, false},
		{"predicate overrides to true", Callbacks{Enabled: func(Level, Category, any) bool { return true }}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runtimeEnabled(&tt.cb, LevelInfo, C("x")); got != tt.want {
				t.Errorf("runtimeEnabled = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestWriteEmptyBufferIsNoop 测试空缓冲不触达后端
func TestWriteEmptyBufferIsNoop(t *testing.T) {
	var calls int
	SetCallbacks(Callbacks{Write: func([]byte, Level, Category, any) { calls++ }})
	t.Cleanup(ResetCallbacks)

	write(LevelInfo, C("x"), nil)
	write(LevelInfo, C("x"), []byte{})

	if calls != 0 {
		t.Errorf("write callback invoked %d times for empty buffers, want 0", calls)
	}
}

// TestCompatLayout 测试消息路径交叉接线时的行式布局
func TestCompatLayout(t *testing.T) {
	var buf bytes.Buffer
	SetCallbacks(Callbacks{Write: func(data []byte, _ Level, _ Category, _ any) { buf.Write(data) }})
	t.Cleanup(ResetCallbacks)

	attr := Attributes{Version: attrVersion, Time: 12345}
	message(LevelError, C("app"), &attr, "code %d", []any{7})

	want := "0000012345 [app] ERROR: code 7\r\n"
	if got := buf.String(); got != want {
		t.Errorf("compat layout = %q, want %q", got, want)
	}
}
