// Package main 是雨滴动画的 Ebitengine 桌面宿主
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--width <px>      画布宽度（默认取配置 canvas.width）
//	--height <px>     画布高度（默认取配置 canvas.height）
//	--seed <n>        随机种子，0 表示使用配置或当前时间
//	--config <path>   配置文件路径（默认使用嵌入的 data/rain.yaml）
//	--verbose         显示详细日志
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rain/data"
	"github.com/decker502/rain/pkg/app"
	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/embedded"
)

var (
	widthFlag   = flag.Int("width", 0, "Canvas width in pixels (default from config)")
	heightFlag  = flag.Int("height", 0, "Canvas height in pixels (default from config)")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 uses the config seed or the clock")
	configFlag  = flag.String("config", config.RainConfigPath, "Rain config file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	rainConfig, err := config.LoadRainConfig(*configFlag)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	rainApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
		Seed:    *seedFlag,
		Rain:    rainConfig,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer rainApp.Close()

	width, height := rainApp.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(rainConfig.Page.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(rainApp); err != nil {
		log.Fatal(err)
	}
}
