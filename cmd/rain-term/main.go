// Package main 在终端中播放雨滴动画
//
// Usage:
//
//	go run ./cmd/rain-term [flags]
//
// Flags:
//
//	--seed <n>        随机种子，0 表示使用配置或当前时间
//	--config <path>   YAML 配置文件，为空时使用编译期默认值
//	--log <path>      日志文件（终端被动画占用，日志不能输出到屏幕）
//	--verbose         写入详细日志
//
// Controls:
//
//	Esc / Ctrl-C / q  退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/rain"
	"github.com/decker502/rain/pkg/render"
)

var (
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 uses the config seed or the clock")
	configFlag  = flag.String("config", "", "Rain config file (default: built-in values)")
	logFlag     = flag.String("log", "rain-term.log", "Log file used with --verbose")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultRainConfig()
	if *configFlag != "" {
		loaded, err := config.LoadRainConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return rain.NewSetupError("open terminal", err)
	}
	if err := screen.Init(); err != nil {
		return rain.NewSetupError("init terminal", err)
	}
	defer screen.Fini()

	surface, err := render.NewTerminalSurface(screen, render.DefaultCellWidth, render.DefaultCellHeight)
	if err != nil {
		return rain.NewSetupError("create surface", err)
	}

	// 尺寸只在启动时查询一次
	width, height := surface.PixelSize()
	opts := []rain.Option{rain.WithConfig(cfg)}
	if *seedFlag != 0 {
		opts = append(opts, rain.WithSeed(*seedFlag))
	}

	session, err := rain.Start(surface, width, height, opts...)
	if err != nil {
		return err
	}
	defer session.Stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				log.Printf("[Term] Quit after %d ticks", session.Ticks())
				return nil
			}
		}
	}
}
