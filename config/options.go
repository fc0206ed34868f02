package config

// Option 函数式选项，用于配置 Loader
type Option func(*options)

// options Loader 的内部选项
type options struct {
	name      string
	fileType  string
	paths     []string
	envPrefix string
	dotenv    bool
}

// defaultOptions 返回 Loader 的默认选项
func defaultOptions() *options {
	return &options{
		name:      "flog",
		fileType:  "yaml",
		paths:     []string{"."},
		envPrefix: "FLOG",
	}
}

// WithName 设置配置文件名（不含扩展名），默认 "flog"
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithFileType 设置配置文件格式（yaml|json），默认 yaml
func WithFileType(fileType string) Option {
	return func(o *options) {
		o.fileType = fileType
	}
}

// WithPaths 设置配置文件搜索路径，默认当前目录
func WithPaths(paths ...string) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithEnvPrefix 设置环境变量前缀，默认 "FLOG"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithDotEnv 启用 .env 文件装载
func WithDotEnv() Option {
	return func(o *options) {
		o.dotenv = true
	}
}
