package config

import (
	"fmt"
	"time"

	"github.com/decker502/neuralfx/pkg/types"
)

// HeroConfig 英雄区表面在视口中的位置
// 所有值均为视口尺寸的比例（0..1），视口变化时重新计算
type HeroConfig struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// Rect 根据视口尺寸计算英雄区矩形
func (h HeroConfig) Rect(viewportW, viewportH float64) types.Rect {
	return types.Rect{
		X: h.X * viewportW,
		Y: h.Y * viewportH,
		W: h.W * viewportW,
		H: h.H * viewportH,
	}
}

func (h HeroConfig) validate() error {
	for name, v := range map[string]float64{"x": h.X, "y": h.Y, "w": h.W, "h": h.H} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, v)
		}
	}
	if h.X+h.W > 1 || h.Y+h.H > 1 {
		return fmt.Errorf("hero rect exceeds viewport: x+w=%v y+h=%v", h.X+h.W, h.Y+h.H)
	}
	return nil
}

// TerminalConfig 终端宿主配置
// 一个字符单元格折算成 CellWidth x CellHeight 个表面单位，
// 使接近阈值等参数在终端中保持与窗口相近的视觉尺度
type TerminalConfig struct {
	CellWidth     float64       `yaml:"cellWidth" toml:"cellWidth"`
	CellHeight    float64       `yaml:"cellHeight" toml:"cellHeight"`
	FrameInterval time.Duration `yaml:"frameInterval" toml:"frameInterval"`
}

func (t TerminalConfig) validate() error {
	if t.CellWidth <= 0 || t.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %vx%v", t.CellWidth, t.CellHeight)
	}
	if t.FrameInterval <= 0 {
		return fmt.Errorf("frameInterval must be > 0, got %v", t.FrameInterval)
	}
	return nil
}
