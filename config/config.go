// Package config 提供 flog 的运行时配置装载。
//
// 配置来源按优先级从高到低：环境变量（FLOG_ 前缀）、.env 文件、
// 配置文件（YAML/JSON）。Apply 把配置落地为过滤器加行式后端的
// 完整注册，Watch 在配置文件变更时自动重新落地，实现免重启调级。
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ceyewan/flog"
	"github.com/ceyewan/flog/backend"
	"github.com/ceyewan/flog/filter"
	"github.com/ceyewan/flog/xerrors"
)

// Config 日志配置
//
// Level 为默认级别阈值，Categories 为各类别子树的独立阈值，
// Output 为输出目标（stdout、stderr 或文件路径）。
type Config struct {
	Level      string            `mapstructure:"level" yaml:"level" json:"level"`
	Output     string            `mapstructure:"output" yaml:"output" json:"output"`
	Categories map[string]string `mapstructure:"categories" yaml:"categories" json:"categories"`
}

// Default 返回默认配置：info 级别输出到 stderr，无类别规则
func Default() *Config {
	return &Config{Level: "info", Output: "stderr"}
}

// validate 校验并补全配置
func (c *Config) validate() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	if _, err := flog.ParseLevel(c.Level); err != nil {
		return err
	}
	for category, level := range c.Categories {
		if category == "" {
			return fmt.Errorf("empty category in rules")
		}
		if _, err := flog.ParseLevel(level); err != nil {
			return xerrors.Wrapf(err, "category %q", category)
		}
	}
	return nil
}

// Apply 将配置落地为进程后端注册
//
// 构建类别过滤器与行式输出后端，并整体替换当前回调包。
// 重复调用总是整包替换，不存在部分生效的中间状态。
func (c *Config) Apply() error {
	if err := c.validate(); err != nil {
		return xerrors.Wrap(err, "invalid logging config")
	}

	defaultLevel, _ := flog.ParseLevel(c.Level)
	rules := make([]filter.Rule, 0, len(c.Categories))
	for category, level := range c.Categories {
		l, _ := flog.ParseLevel(level)
		rules = append(rules, filter.Rule{Category: category, Level: l})
	}
	f := filter.New(defaultLevel, rules...)

	w, outFile, err := resolveOutput(c.Output)
	if err != nil {
		return xerrors.Wrapf(err, "opening output %q", c.Output)
	}

	cb := backend.NewWriter(w).Callbacks()
	cb.Enabled = f.Func()
	flog.SetCallbacks(cb)
	swapOutputFile(outFile)
	return nil
}

var (
	outputMu   sync.Mutex
	outputFile *os.File
)

// swapOutputFile 记录本次打开的输出文件并关闭上一份
//
// 关闭发生在回调整包替换之后；在途分发若仍持有旧回调包，
// 写入会失败，行式后端忽略写入错误。
func swapOutputFile(f *os.File) {
	outputMu.Lock()
	prev := outputFile
	outputFile = f
	outputMu.Unlock()
	if prev != nil {
		prev.Close()
	}
}

// resolveOutput 将输出目标解析为 writer
//
// 仅当目标为文件路径时第二个返回值非 nil，由调用方负责关闭。
func resolveOutput(output string) (io.Writer, *os.File, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}
