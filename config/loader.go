package config

import (
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ceyewan/flog/xerrors"
)

// Loader 配置装载器
//
// 封装 viper：文件、.env、环境变量三级来源，支持文件变更监听。
type Loader struct {
	v    *viper.Viper
	opts *options

	mu       sync.Mutex
	onChange func(*Config)
	watching bool
}

// NewLoader 创建配置装载器
func NewLoader(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Loader{v: viper.New(), opts: o}
}

// Load 从所有来源装载配置
//
// 配置文件缺席不是错误，此时返回环境变量叠加默认值的结果。
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(l.opts.name)
	l.v.SetConfigType(l.opts.fileType)
	for _, path := range l.opts.paths {
		l.v.AddConfigPath(path)
	}

	// 显式默认值，确保仅有环境变量来源时 Unmarshal 也能看到这些键
	l.v.SetDefault("level", "info")
	l.v.SetDefault("output", "stderr")

	// 环境变量优先级最高，先行配置以覆盖文件值
	l.v.SetEnvPrefix(l.opts.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.opts.dotenv {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, xerrors.Wrap(err, "loading .env")
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, xerrors.Wrapf(err, "reading config %s", l.opts.name)
		}
	}

	return l.unmarshal()
}

// unmarshal 将当前 viper 状态解析为已校验的 Config
func (l *Loader) unmarshal() (*Config, error) {
	cfg := Default()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, xerrors.Wrap(err, "unmarshaling config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch 监听配置文件变更并回调
//
// 每次变更重新解析；解析失败或文件尚在写入中途时保持上一份
// 生效配置，本次变更被忽略。
// 典型用法是在回调里调用 Config.Apply 实现免重启调级。
func (l *Loader) Watch(onChange func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = onChange
	if l.watching {
		return
	}
	l.watching = true
	l.v.OnConfigChange(func(fsnotify.Event) {
		if !l.fileHasKeys() {
			return
		}
		cfg, err := l.unmarshal()
		if err != nil {
			return
		}
		l.mu.Lock()
		fn := l.onChange
		l.mu.Unlock()
		if fn != nil {
			fn(cfg)
		}
	})
	l.v.WatchConfig()
}

// fileHasKeys 单独解析配置文件本身，判断其当前是否含有任何键。
//
// 编辑器先截断再写入时，变更事件可能在文件瞬时为空的窗口触发，
// viper 会把空文件叠加默认值解析成一份“合法”的纯默认配置。
// 此时跳过本次变更，保持上一份生效配置。
func (l *Loader) fileHasKeys() bool {
	file := l.v.ConfigFileUsed()
	if file == "" {
		return false
	}
	fv := viper.New()
	fv.SetConfigFile(file)
	if err := fv.ReadInConfig(); err != nil {
		return false
	}
	return len(fv.AllKeys()) > 0
}

// Setup 装载配置并立即落地，随后监听变更自动重新落地
//
// 最常用的一站式入口：
//
//	if err := config.Setup(); err != nil { ... }
func Setup(opts ...Option) error {
	l := NewLoader(opts...)
	cfg, err := l.Load()
	if err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}
	l.Watch(func(cfg *Config) {
		// 变更落地失败时保留旧注册
		_ = cfg.Apply()
	})
	return nil
}
