// Package terminal 在终端中运行特效
//
// 使用 tcell 作为终端后端：鼠标移动与窗口尺寸变化被换算为表面坐标
// （一个字符单元格 = CellWidth x CellHeight 个表面单位）后交给 app.Effects，
// 节点、连线和粒子以字符形式绘制。
package terminal
