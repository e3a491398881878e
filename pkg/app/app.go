// Package app 提供 Ebitengine 宿主的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
//
// 雨滴会话由 rain.FrameScheduler 驱动：每次 Update 累计一帧时间，
// 达到间隔后执行一次 tick，绘制到离屏画布，Draw 时合成到屏幕。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/rain"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Width/Height 画布尺寸，为 0 时使用配置文件中的 canvas.width/height
	Width  int
	Height int
	// Seed 随机种子，为 0 时使用配置文件中的 seed
	Seed int64
	// Rain 动画配置，为 nil 时使用编译期默认值
	Rain *config.RainConfig
}

// App 是雨滴动画的 Ebitengine 宿主，实现 ebiten.Game 接口
type App struct {
	session    *rain.Session
	surface    *EbitenSurface
	scheduler  *rain.FrameScheduler
	background color.NRGBA
	width      int
	height     int
	verbose    bool
}

// NewApp 创建画布并启动雨滴会话
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	rainConfig := cfg.Rain
	if rainConfig == nil {
		rainConfig = config.DefaultRainConfig()
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = rainConfig.Canvas.Width
	}
	if height == 0 {
		height = rainConfig.Canvas.Height
	}

	surface, err := NewEbitenSurface(width, height)
	if err != nil {
		return nil, rain.NewSetupError("create surface", err)
	}

	scheduler := rain.NewFrameScheduler()
	opts := []rain.Option{
		rain.WithConfig(rainConfig),
		rain.WithScheduler(scheduler),
	}
	if cfg.Seed != 0 {
		opts = append(opts, rain.WithSeed(cfg.Seed))
	}

	session, err := rain.Start(surface, width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("雨滴动画启动失败: %w", err)
	}
	log.Printf("[App] Canvas %dx%d ready", width, height)

	return &App{
		session:    session,
		surface:    surface,
		scheduler:  scheduler,
		background: rainConfig.BackgroundColor(),
		width:      width,
		height:     height,
		verbose:    cfg.Verbose,
	}, nil
}

// frameDuration 返回一次 Update 对应的时间
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Update 推进调度器
// 每个 tick 调用一次（默认每秒 60 次），最多触发一次雨滴 tick
func (a *App) Update() error {
	a.scheduler.Advance(frameDuration())
	return nil
}

// Draw 绘制背景并合成离屏画布
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	screen.DrawImage(a.surface.Image(), nil)
}

// Layout 返回启动时确定的画布尺寸
// 窗口缩放不会改变画布，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Close 停止雨滴会话
func (a *App) Close() {
	a.session.Stop()
}

// Session 返回当前雨滴会话
func (a *App) Session() *rain.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
