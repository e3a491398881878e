package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/rain/pkg/rain"
)

// 默认每个字符格对应的像素尺寸
// 终端字符大约是 1:2 的宽高比
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// TerminalSurface 把像素坐标映射到终端字符格上绘制
//
// 线段按字符格采样，根据斜率选择 '|'、'/' 或 '\' 字形。
// 线宽和线帽在字符格精度下没有意义，线宽 >= 2 时以粗体显示。
type TerminalSurface struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	style  tcell.Style
}

// NewTerminalSurface 基于已初始化的 tcell 屏幕创建画布
// cellW/cellH 为每个字符格代表的像素数
func NewTerminalSurface(screen tcell.Screen, cellW, cellH int) (*TerminalSurface, error) {
	if screen == nil {
		return nil, ErrNoTerminal
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: cell %dx%d", ErrBadSize, cellW, cellH)
	}
	return &TerminalSurface{
		screen: screen,
		cellW:  float64(cellW),
		cellH:  float64(cellH),
		style:  tcell.StyleDefault,
	}, nil
}

// PixelSize 返回屏幕对应的像素尺寸，启动时查询一次
func (t *TerminalSurface) PixelSize() (int, int) {
	cols, rows := t.screen.Size()
	return cols * int(t.cellW), rows * int(t.cellH)
}

// Style 返回当前描边样式
func (t *TerminalSurface) Style() tcell.Style {
	return t.style
}

// SetStrokeStyle 终端不支持透明度，按 alpha 与黑色背景混合
func (t *TerminalSurface) SetStrokeStyle(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	blend := func(v uint8) int32 {
		return int32(math.Round(float64(v) * float64(n.A) / 255))
	}
	t.style = t.style.Foreground(tcell.NewRGBColor(blend(n.R), blend(n.G), blend(n.B)))
}

func (t *TerminalSurface) SetLineWidth(w float64) {
	t.style = t.style.Bold(w >= 2)
}

func (t *TerminalSurface) SetLineCap(rain.LineCap) {}

func (t *TerminalSurface) Clear() {
	t.screen.Clear()
}

func (t *TerminalSurface) StrokeLine(x0, y0, x1, y1 float64) {
	glyph := glyphFor(x1-x0, y1-y0)
	cols, rows := t.screen.Size()

	cx0, cy0 := x0/t.cellW, y0/t.cellH
	cx1, cy1 := x1/t.cellW, y1/t.cellH
	steps := int(math.Ceil(math.Max(math.Abs(cx1-cx0), math.Abs(cy1-cy0))))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		cx := int(math.Floor(cx0 + (cx1-cx0)*f))
		cy := int(math.Floor(cy0 + (cy1-cy0)*f))
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		t.screen.SetContent(cx, cy, glyph, nil, t.style)
	}
}

// Flush 把本帧内容输出到终端
func (t *TerminalSurface) Flush() {
	t.screen.Show()
}

// glyphFor 按线段方向选择字形，y 轴向下
func glyphFor(dx, dy float64) rune {
	switch {
	case dx == 0 && dy == 0:
		return '.'
	case math.Abs(dx) < 0.3*math.Abs(dy):
		return '|'
	case math.Abs(dy) < 0.3*math.Abs(dx):
		return '-'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}
