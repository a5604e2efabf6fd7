package config

import (
	"fmt"
	"time"
)

// NetworkConfig 神经网络背景动画配置
type NetworkConfig struct {
	NodeCount       int `yaml:"nodeCount" toml:"nodeCount"`
	ConnectionCount int `yaml:"connectionCount" toml:"connectionCount"` // 抽取次数，自连抽取会被丢弃
	ParticleCount   int `yaml:"particleCount" toml:"particleCount"`

	// 流动粒子推进
	TickInterval time.Duration `yaml:"tickInterval" toml:"tickInterval"` // 默认 30ms
	ProgressStep float64       `yaml:"progressStep" toml:"progressStep"` // 每 tick 进度增量，默认 0.015

	// 节点激活脉冲
	PulseInterval time.Duration `yaml:"pulseInterval" toml:"pulseInterval"` // 默认 1.5s
	PulseDuration time.Duration `yaml:"pulseDuration" toml:"pulseDuration"` // 默认 1s

	// 指针接近效果
	// scale = 1 + intensity*ScaleRange
	// opacity = OpacityBaseline + intensity*OpacityRange
	ProximityThreshold float64 `yaml:"proximityThreshold" toml:"proximityThreshold"`
	ScaleRange         float64 `yaml:"scaleRange" toml:"scaleRange"`
	OpacityBaseline    float64 `yaml:"opacityBaseline" toml:"opacityBaseline"`
	OpacityRange       float64 `yaml:"opacityRange" toml:"opacityRange"`
	DefaultOpacity     float64 `yaml:"defaultOpacity" toml:"defaultOpacity"` // 阈值外节点的透明度

	// 呼吸/闪烁动画随机延迟上限（秒）
	NodeDelayMax       float64 `yaml:"nodeDelayMax" toml:"nodeDelayMax"`
	ConnectionDelayMax float64 `yaml:"connectionDelayMax" toml:"connectionDelayMax"`

	// ResizeDebounce 视口尺寸变化的去抖时间
	// 0 表示每次 resize 事件都立即整体重建
	ResizeDebounce time.Duration `yaml:"resizeDebounce" toml:"resizeDebounce"`
}

func (n NetworkConfig) validate() error {
	if n.NodeCount < 0 || n.ConnectionCount < 0 || n.ParticleCount < 0 {
		return fmt.Errorf("population sizes must be >= 0, got nodes=%d connections=%d particles=%d",
			n.NodeCount, n.ConnectionCount, n.ParticleCount)
	}
	if n.TickInterval <= 0 {
		return fmt.Errorf("tickInterval must be > 0, got %v", n.TickInterval)
	}
	if n.ProgressStep <= 0 || n.ProgressStep >= 1 {
		return fmt.Errorf("progressStep must be in (0, 1), got %v", n.ProgressStep)
	}
	if n.PulseInterval <= 0 || n.PulseDuration <= 0 {
		return fmt.Errorf("pulse interval and duration must be > 0, got %v / %v", n.PulseInterval, n.PulseDuration)
	}
	if n.ProximityThreshold <= 0 {
		return fmt.Errorf("proximityThreshold must be > 0, got %v", n.ProximityThreshold)
	}
	if n.NodeDelayMax < 0 || n.ConnectionDelayMax < 0 {
		return fmt.Errorf("animation delay max must be >= 0")
	}
	if n.ResizeDebounce < 0 {
		return fmt.Errorf("resizeDebounce must be >= 0, got %v", n.ResizeDebounce)
	}
	return nil
}
