package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/systems"
	"github.com/decker502/neuralfx/pkg/types"
)

// cellWriter 绘制目标，tcell.Screen 满足该接口
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// 字符与配色
const (
	glyphConnection = '·'
	glyphNode       = 'o'
	glyphHighlight  = 'O'
	glyphActive     = '@'
	glyphTraveler   = '*'
	glyphDrift      = '.'
)

var (
	styleConnection = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 90, 130))
	styleNode       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 220, 255))
	styleActive     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTraveler   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 240, 255))
	styleDrift      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))
)

// projector 表面坐标与字符单元格之间的换算
type projector struct {
	cellW, cellH float64
	cols, rows   int
}

// toSurface 单元格中心对应的表面坐标
func (p projector) toSurface(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * p.cellW, (float64(row) + 0.5) * p.cellH
}

// toCell 表面坐标所在的单元格，超出屏幕时 ok=false
func (p projector) toCell(pt types.Point) (col, row int, ok bool) {
	col = int(math.Floor(pt.X / p.cellW))
	row = int(math.Floor(pt.Y / p.cellH))
	ok = col >= 0 && row >= 0 && col < p.cols && row < p.rows
	return col, row, ok
}

func (p projector) plot(w cellWriter, pt types.Point, glyph rune, style tcell.Style) bool {
	col, row, ok := p.toCell(pt)
	if ok {
		w.SetContent(col, row, glyph, nil, style)
	}
	return ok
}

// drawLine 沿线段按单元格步进采样
func (p projector) drawLine(w cellWriter, from, to types.Point, glyph rune, style tcell.Style) {
	dc := math.Abs(to.X-from.X) / p.cellW
	dr := math.Abs(to.Y-from.Y) / p.cellH
	steps := int(math.Ceil(math.Max(dc, dr)))
	if steps == 0 {
		p.plot(w, from, glyph, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.plot(w, types.Point{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}, glyph, style)
	}
}

// drawEffects 按 连线 -> 漂浮粒子 -> 节点 -> 流动粒子 的顺序绘制
// 返回实际落在屏幕内的字符数
func drawEffects(w cellWriter, p projector, effects *app.Effects, elapsed, riseDistance float64) int {
	drawn := 0

	if network := effects.Network(); network != nil && network.Enabled() {
		for _, c := range network.Connections() {
			p.drawLine(w, c.From, c.To, glyphConnection, styleConnection)
		}
	}

	if field := effects.Drift(); field != nil && field.State() == systems.DriftReady {
		bounds := field.Bounds()
		for _, dp := range field.Particles() {
			frame := systems.DriftFrame(dp, elapsed, riseDistance)
			if frame.Alpha <= 0 {
				continue
			}
			pos := systems.DriftScreenPosition(bounds, dp, frame)
			if bounds.Contains(pos.X, pos.Y) && p.plot(w, pos, glyphDrift, styleDrift) {
				drawn++
			}
		}
	}

	if network := effects.Network(); network != nil && network.Enabled() {
		for _, n := range network.Nodes() {
			glyph, style := glyphNode, styleNode
			switch {
			case n.Active:
				glyph, style = glyphActive, styleActive
			case n.Highlighted:
				glyph = glyphHighlight
			}
			if p.plot(w, n.Position, glyph, style) {
				drawn++
			}
		}
		for _, tr := range network.Particles() {
			if p.plot(w, tr.Position, glyphTraveler, styleTraveler) {
				drawn++
			}
		}
	}

	return drawn
}
