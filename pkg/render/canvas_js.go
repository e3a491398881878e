//go:build js && wasm

package render

import (
	"image/color"
	"syscall/js"

	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/rain"
)

// CanvasSurface 绘制到浏览器 <canvas> 元素的 2D 上下文
type CanvasSurface struct {
	el     js.Value
	ctx    js.Value
	width  int
	height int
}

// OpenCanvas 按 id 查找 <canvas>，将其尺寸设为窗口内部尺寸并获取 2D 上下文
//
// 尺寸只在此处查询一次，窗口之后的缩放不会影响画布。
func OpenCanvas(id string) (*CanvasSurface, error) {
	window := js.Global()
	document := window.Get("document")
	if !document.Truthy() {
		return nil, ErrNoCanvas
	}

	el := document.Call("getElementById", id)
	if !el.Truthy() {
		return nil, ErrNoCanvas
	}
	if tag := el.Get("tagName"); !tag.Truthy() || tag.String() != "CANVAS" {
		return nil, ErrNotCanvas
	}

	el.Set("width", window.Get("innerWidth").Int())
	el.Set("height", window.Get("innerHeight").Int())

	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, ErrNoContext
	}

	return &CanvasSurface{
		el:     el,
		ctx:    ctx,
		width:  el.Get("width").Int(),
		height: el.Get("height").Int(),
	}, nil
}

// Size 返回 <canvas> 的像素尺寸
func (c *CanvasSurface) Size() (int, int) {
	return c.width, c.height
}

func (c *CanvasSurface) SetStrokeStyle(clr color.Color) {
	c.ctx.Set("strokeStyle", config.FormatRGBA(clr))
}

func (c *CanvasSurface) SetLineWidth(w float64) {
	c.ctx.Set("lineWidth", w)
}

func (c *CanvasSurface) SetLineCap(lc rain.LineCap) {
	c.ctx.Set("lineCap", lc.String())
}

func (c *CanvasSurface) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
}

func (c *CanvasSurface) StrokeLine(x0, y0, x1, y1 float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}
