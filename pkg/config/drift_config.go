package config

import (
	"fmt"
	"time"
)

// DriftConfig 英雄区漂浮粒子配置
//
// 起点以表面尺寸的百分比表示，StartY 默认位于可视区域下方（100%~200%）。
// Delay/Duration 单位为秒，Size 单位为像素。
type DriftConfig struct {
	Count int `yaml:"count" toml:"count"`

	StartupDelay time.Duration `yaml:"startupDelay" toml:"startupDelay"` // 容忍表面延迟挂载，默认 100ms
	RetryBackoff time.Duration `yaml:"retryBackoff" toml:"retryBackoff"` // 表面缺失时的重试间隔，默认 500ms

	StartX   Range `yaml:"startX" toml:"startX"`
	StartY   Range `yaml:"startY" toml:"startY"`
	Delay    Range `yaml:"delay" toml:"delay"`
	Duration Range `yaml:"duration" toml:"duration"`
	Size     Range `yaml:"size" toml:"size"`

	// 视差：offset = (pct - 50) * speed * ParallaxFactor
	// speed = (index%3 + 1) * SpeedStep
	SpeedStep      float64 `yaml:"speedStep" toml:"speedStep"`
	ParallaxFactor float64 `yaml:"parallaxFactor" toml:"parallaxFactor"`

	// RiseDistance 单次上升经过的距离（表面高度的百分比）
	RiseDistance float64 `yaml:"riseDistance" toml:"riseDistance"`
}

func (d DriftConfig) validate() error {
	if d.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", d.Count)
	}
	if d.StartupDelay < 0 {
		return fmt.Errorf("startupDelay must be >= 0, got %v", d.StartupDelay)
	}
	if d.RetryBackoff <= 0 {
		return fmt.Errorf("retryBackoff must be > 0, got %v", d.RetryBackoff)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"startX", d.StartX},
		{"startY", d.StartY},
		{"delay", d.Delay},
		{"duration", d.Duration},
		{"size", d.Size},
	}
	for _, item := range ranges {
		if err := item.r.validate(item.name); err != nil {
			return err
		}
	}
	if d.Duration.Min <= 0 {
		return fmt.Errorf("duration.min must be > 0, got %v", d.Duration.Min)
	}
	if d.Delay.Min < 0 {
		return fmt.Errorf("delay.min must be >= 0, got %v", d.Delay.Min)
	}
	return nil
}
