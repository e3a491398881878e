// Package render 提供雨滴动画的绘制目标
//
// 每种宿主对应一个 rain.Surface 实现（Ebitengine 画布见 pkg/app）：
//   - TerminalSurface：tcell 终端屏幕，每个字符格对应一块像素区域
//   - CanvasSurface：浏览器 <canvas> 2D 上下文（仅 js/wasm）
package render

import "errors"

// 画布获取失败的原因
// 调用方使用 rain.NewSetupError 包装后返回给宿主
var (
	ErrNoCanvas   = errors.New("canvas element not found")
	ErrNotCanvas  = errors.New("element is not a canvas")
	ErrNoContext  = errors.New("2d rendering context unavailable")
	ErrBadSize    = errors.New("surface size must be positive")
	ErrNoTerminal = errors.New("terminal screen unavailable")
)
