//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.rain -o build/android/rain.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Rain.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/rain/data"
	"github.com/decker502/rain/pkg/app"
	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/embedded"
)

func init() {
	// 初始化嵌入资源，与桌面端读取同一份 data/rain.yaml
	embedded.Init(data.FS)

	rainConfig, err := config.LoadRainConfig(config.RainConfigPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	cfg := app.Config{
		Verbose: true,
		Rain:    rainConfig,
	}

	rainApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(rainApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
