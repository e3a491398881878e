package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseRGBA 解析 CSS 颜色字符串
//
// 支持的格式：
//   - "rgba(255, 255, 255, 0.5)"：alpha 取值 0~1
//   - "rgb(255, 255, 255)"
//   - "#rrggbb" / "#rrggbbaa"
//
// 返回非预乘的 color.NRGBA
func ParseRGBA(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color format %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunc(args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("expected %d color components, got %d", n, len(parts))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color component %q: %w", parts[i], err)
		}
		if v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("color component %d out of range 0-255", v)
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha %q: %w", parts[3], err)
		}
		if a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("alpha %.2f out of range 0-1", a)
		}
		alpha = uint8(math.Round(a * 255))
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// FormatRGBA 将颜色格式化为 CSS rgba() 字符串
func FormatRGBA(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := strconv.FormatFloat(math.Round(float64(n.A)/255*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, a)
}
