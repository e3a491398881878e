//go:build js && wasm

// Package main 是不依赖 Ebitengine 的浏览器宿主
//
// 构建：
//
//	GOOS=js GOARCH=wasm go build -o rain.wasm ./cmd/rain-wasm
//
// 页面加载后，程序组装页面（标题、姓名、链接区、<canvas id="rain">），
// 组装完成后立即启动雨滴动画。同时在 window 上导出：
//
//	setup_rain()  启动动画，失败时返回错误信息字符串
//	stop_rain()   停止动画
package main

import (
	"context"
	"log"
	"syscall/js"

	"github.com/decker502/rain/data"
	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/embedded"
	"github.com/decker502/rain/pkg/page"
	"github.com/decker502/rain/pkg/rain"
	"github.com/decker502/rain/pkg/render"
)

var slot rain.Slot

// setupRain 在已存在的 <canvas> 上启动动画
// 同一时间只允许一个会话
func setupRain(cfg *config.RainConfig) error {
	return slot.Launch(func() (*rain.Session, error) {
		surface, err := render.OpenCanvas(cfg.Canvas.ID)
		if err != nil {
			return nil, rain.NewSetupError("open canvas #"+cfg.Canvas.ID, err)
		}

		width, height := surface.Size()
		return rain.Start(surface, width, height,
			rain.WithConfig(cfg),
			rain.WithScheduler(rain.JSIntervalScheduler{}),
		)
	})
}

func main() {
	embedded.Init(data.FS)
	cfg, err := config.LoadRainConfig(config.RainConfigPath)
	if err != nil {
		log.Printf("[Config] %v, using built-in defaults", err)
		cfg = config.DefaultRainConfig()
	}

	js.Global().Set("setup_rain", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if err := setupRain(cfg); err != nil {
			log.Printf("[Rain] %v", err)
			return err.Error()
		}
		return nil
	}))
	js.Global().Set("stop_rain", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		slot.Stop()
		return nil
	}))

	ready := page.NewReady()
	ready.Complete(page.Mount(page.Build(cfg.Page, cfg.Canvas.ID)))

	if err := ready.Wait(context.Background()); err != nil {
		log.Printf("[Page] Page assembly failed, rain not started: %v", err)
	} else if err := setupRain(cfg); err != nil {
		log.Printf("[Rain] %v", err)
	}

	// 保持 Go 运行时存活，定时器回调依赖它
	select {}
}
