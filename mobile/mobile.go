//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.neuralfx -o build/android/neuralfx.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/NeuralFX.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/config"
)

func init() {
	app.ConfigureLogging(true)

	// 移动端没有命令行参数，使用内嵌默认配置；触摸点作为指针
	mobile.SetGame(app.NewApp(app.Options{Config: config.Default()}))
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
