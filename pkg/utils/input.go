package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回第一个活动触摸点的位置，没有触摸时返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
