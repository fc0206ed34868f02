package flog_test

import (
	"testing"

	"github.com/ceyewan/flog"
)

// TestCategoryPrecedence 测试三级解析链：作用域 > 源文件 > 模块
func TestCategoryPrecedence(t *testing.T) {
	flog.SetModuleCategory(flog.C("module"))
	t.Cleanup(func() { flog.SetModuleCategory(flog.Category{}) })

	scoped := flog.C("scoped")
	source := flog.C("source")
	none := flog.Category{}

	tests := []struct {
		name   string
		scoped flog.Category
		source flog.Category
		want   string
	}{
		{"scoped wins over all", scoped, source, "scoped"},
		{"source wins without scoped", none, source, "source"},
		{"module default as fallback", none, none, "module"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flog.Resolve(tt.scoped, tt.source)
			if !got.Ok() || got.Name() != tt.want {
				t.Errorf("Resolve = %v, want %q", got, tt.want)
			}
		})
	}
}

// TestCategoryAbsence 三级全部缺席时得到"无类别"，而非空字符串
func TestCategoryAbsence(t *testing.T) {
	flog.SetModuleCategory(flog.Category{})

	got := flog.Resolve(flog.Category{}, flog.Category{})
	if got.Ok() {
		t.Fatalf("Resolve = %v, want unset category", got)
	}

	// "无类别"与显式空字符串类别必须可区分
	empty := flog.C("")
	if !empty.Ok() {
		t.Error(`C("") must be a set category`)
	}
	if got.Ok() == empty.Ok() {
		t.Error("unset category indistinguishable from empty-string category")
	}
	if got.Name() != "" || empty.Name() != "" {
		t.Error("both should report empty name; only Ok() separates them")
	}
}

// TestScopedEmptyStringStillWins 显式空字符串作用域类别依然胜出
func TestScopedEmptyStringStillWins(t *testing.T) {
	flog.SetModuleCategory(flog.C("module"))
	t.Cleanup(func() { flog.SetModuleCategory(flog.Category{}) })

	got := flog.Resolve(flog.C(""), flog.C("source"))
	if !got.Ok() || got.Name() != "" {
		t.Errorf("Resolve = %v, want explicit empty category", got)
	}
}

// TestSetModuleCategory 测试模块类别的设置与清除
func TestSetModuleCategory(t *testing.T) {
	flog.SetModuleCategory(flog.C("app"))
	if got := flog.ModuleCategory(); !got.Ok() || got.Name() != "app" {
		t.Errorf("ModuleCategory = %v, want app", got)
	}

	flog.SetModuleCategory(flog.Category{})
	if got := flog.ModuleCategory(); got.Ok() {
		t.Errorf("ModuleCategory = %v after clear, want unset", got)
	}
}

// TestCategoryString 测试显示形式
func TestCategoryString(t *testing.T) {
	if got := flog.C("a.b").String(); got != "a.b" {
		t.Errorf("String = %q", got)
	}
	if got := (flog.Category{}).String(); got != "<none>" {
		t.Errorf("String = %q, want <none>", got)
	}
}
