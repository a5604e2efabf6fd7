package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML 返回内嵌的默认配置文件内容
func DefaultYAML() []byte {
	return defaultYAML
}

// Config 特效的完整运行配置
//
// 配置文件支持 YAML（.yaml/.yml）与 TOML（.toml）两种格式，
// 文件中未出现的字段保留 Default() 中的值。
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Network  NetworkConfig  `yaml:"network" toml:"network"`
	Drift    DriftConfig    `yaml:"drift" toml:"drift"`
	Hero     HeroConfig     `yaml:"hero" toml:"hero"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
	Motion   MotionConfig   `yaml:"motion" toml:"motion"`
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`   // 初始窗口宽度（像素）
	Height int    `yaml:"height" toml:"height"` // 初始窗口高度（像素）
	Title  string `yaml:"title" toml:"title"`
	TPS    int    `yaml:"tps" toml:"tps"` // 每秒逻辑更新次数，决定调度器推进步长
}

// MotionConfig 动效偏好
type MotionConfig struct {
	// ReducedMotion 为 true 时不创建任何特效
	// 环境变量 NEURALFX_REDUCED_MOTION 可覆盖，启动时只读取一次
	ReducedMotion bool `yaml:"reducedMotion" toml:"reducedMotion"`
}

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// Contains 判断 v 是否落在 [Min, Max) 内（Min == Max 时只接受 Min）
func (r Range) Contains(v float64) bool {
	if r.Min == r.Max {
		return v == r.Min
	}
	return v >= r.Min && v < r.Max
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min %.2f > max %.2f", name, r.Min, r.Max)
	}
	return nil
}

// Default 返回默认配置
// 默认值：20 节点 / 25 连线 / 12 流动粒子，25 个漂浮粒子
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// 内嵌文件随二进制发布，解析失败属于构建错误
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return &cfg
}

// Load 从文件加载配置
//
// 参数：
//   - path: 配置文件路径，为空则返回默认配置
//
// 返回：
//   - 合并了默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := decode(cfg, filepath.Ext(path), data); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// decode 按扩展名选择解码器，覆盖 cfg 中已有的默认值
func decode(cfg *Config, ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}
	return nil
}

// Validate 校验配置的有效性
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", c.Window.TPS)
	}
	if err := c.Network.validate(); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := c.Drift.validate(); err != nil {
		return fmt.Errorf("drift: %w", err)
	}
	if err := c.Hero.validate(); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if err := c.Terminal.validate(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// Marshal 将配置编码为 YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
