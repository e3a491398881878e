package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/rain/pkg/rain"
	"github.com/decker502/rain/pkg/render"
)

// EbitenSurface 将雨滴绘制到离屏 ebiten.Image 上
// 宿主在 Draw 中把 Image() 合成到屏幕
type EbitenSurface struct {
	canvas *ebiten.Image
	width  int
	height int

	stroke    color.NRGBA
	lineWidth float32
	lineCap   vector.LineCap

	lines int // 自上次 Clear 以来绘制的线段数
}

// NewEbitenSurface 创建指定像素尺寸的离屏画布
func NewEbitenSurface(width, height int) (*EbitenSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrBadSize, width, height)
	}
	return &EbitenSurface{
		canvas:    ebiten.NewImage(width, height),
		width:     width,
		height:    height,
		stroke:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		lineWidth: 1,
		lineCap:   vector.LineCapButt,
	}, nil
}

// Image 返回离屏画布
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.canvas
}

// Size 返回画布像素尺寸
func (s *EbitenSurface) Size() (int, int) {
	return s.width, s.height
}

// Lines 返回自上次 Clear 以来绘制的线段数
func (s *EbitenSurface) Lines() int {
	return s.lines
}

func (s *EbitenSurface) SetStrokeStyle(c color.Color) {
	s.stroke = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *EbitenSurface) SetLineWidth(w float64) {
	s.lineWidth = float32(w)
}

func (s *EbitenSurface) SetLineCap(c rain.LineCap) {
	switch c {
	case rain.LineCapRound:
		s.lineCap = vector.LineCapRound
	case rain.LineCapSquare:
		s.lineCap = vector.LineCapSquare
	default:
		s.lineCap = vector.LineCapButt
	}
}

func (s *EbitenSurface) Clear() {
	s.canvas.Clear()
	s.lines = 0
}

// colorScale 返回描边颜色对应的缩放，半透明颜色直接由 ColorScale 表达
func (s *EbitenSurface) colorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(s.stroke)
	return cs
}

// StrokeLine 用 vector.StrokePath 描边，支持圆角线帽
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))

	vector.StrokePath(s.canvas, &path, &vector.StrokeOptions{
		Width:   s.lineWidth,
		LineCap: s.lineCap,
	}, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: s.colorScale(),
	})
	s.lines++
}
