// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Point 表面坐标系中的一个点（像素/表面单位）
type Point struct {
	X float64
	Y float64
}

// Rect 表面在视口中的矩形区域
// X, Y 为左上角坐标，W, H 为宽高
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromSize 创建一个以原点为左上角的矩形（用于全视口表面）
func RectFromSize(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Empty 判断矩形面积是否为零
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains 判断点是否落在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PercentOf 返回点在矩形内的相对位置（百分比，0..100）
// 点在矩形外时结果会超出 0..100，调用方负责裁剪
func (r Rect) PercentOf(x, y float64) (px, py float64) {
	if r.Empty() {
		return 0, 0
	}
	return (x - r.X) / r.W * 100, (y - r.Y) / r.H * 100
}
