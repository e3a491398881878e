// Package config 提供雨滴动画的 YAML 配置
//
// 默认值即编译期常量，data/rain.yaml 与之保持一致。
// 配置文件中未出现的字段保留默认值。
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/rain/internal/droplet"
	"github.com/decker502/rain/pkg/embedded"
)

// 编译期默认值
// 不提供配置文件时，动画完全由这些常量决定
const (
	DefaultDropletCount   = 500
	DefaultTickIntervalMs = 30
	DefaultStrokeStyle    = "rgba(255, 255, 255, 0.5)"
	DefaultLineWidth      = 1.0
	DefaultLineCap        = "round"
	DefaultCanvasID       = "rain"
	DefaultBackground     = "rgba(0, 0, 0, 1)"
	DefaultCanvasWidth    = 800
	DefaultCanvasHeight   = 600

	// RainConfigPath 嵌入的默认配置文件路径
	RainConfigPath = "data/rain.yaml"
)

// validLineCaps 与 Canvas 2D lineCap 取值一致
var validLineCaps = map[string]bool{
	"butt":   true,
	"round":  true,
	"square": true,
}

// RainConfig 雨滴动画配置
//
// 配置文件位置: data/rain.yaml
type RainConfig struct {
	// Droplets 雨滴数量与取值范围
	Droplets DropletsConfig `yaml:"droplets"`

	// TickIntervalMs 定时器间隔（毫秒）
	TickIntervalMs int `yaml:"tickIntervalMs"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// Stroke 线条样式，启动时设置一次
	Stroke StrokeConfig `yaml:"stroke"`

	// Canvas 画布配置
	Canvas CanvasConfig `yaml:"canvas"`

	// Page 页面内容（仅 wasm 宿主使用）
	Page PageConfig `yaml:"page"`
}

// DropletsConfig 雨滴配置
type DropletsConfig struct {
	Count     int         `yaml:"count"`
	Length    RangeConfig `yaml:"length"`
	VelocityX RangeConfig `yaml:"velocityX"`
	VelocityY RangeConfig `yaml:"velocityY"`
	RespawnY  float64     `yaml:"respawnY"` // 回收后的 Y 坐标（画布上方）
}

// RangeConfig 半开区间 [Min, Max)
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// StrokeConfig 线条样式
type StrokeConfig struct {
	Style string  `yaml:"style"` // CSS 颜色，如 "rgba(255, 255, 255, 0.5)"
	Width float64 `yaml:"width"`
	Cap   string  `yaml:"cap"` // butt / round / square
}

// CanvasConfig 画布配置
type CanvasConfig struct {
	ID         string `yaml:"id"`         // wasm 宿主中 <canvas> 元素的 id
	Background string `yaml:"background"` // 桌面宿主的背景色
	Width      int    `yaml:"width"`      // 桌面宿主的默认宽度
	Height     int    `yaml:"height"`     // 桌面宿主的默认高度
}

// DefaultRainConfig 返回编译期默认配置
func DefaultRainConfig() *RainConfig {
	return &RainConfig{
		Droplets: DropletsConfig{
			Count:     DefaultDropletCount,
			Length:    RangeConfig{Min: droplet.DefaultParams.Length.Min, Max: droplet.DefaultParams.Length.Max},
			VelocityX: RangeConfig{Min: droplet.DefaultParams.VX.Min, Max: droplet.DefaultParams.VX.Max},
			VelocityY: RangeConfig{Min: droplet.DefaultParams.VY.Min, Max: droplet.DefaultParams.VY.Max},
			RespawnY:  droplet.DefaultParams.RespawnY,
		},
		TickIntervalMs: DefaultTickIntervalMs,
		Stroke: StrokeConfig{
			Style: DefaultStrokeStyle,
			Width: DefaultLineWidth,
			Cap:   DefaultLineCap,
		},
		Canvas: CanvasConfig{
			ID:         DefaultCanvasID,
			Background: DefaultBackground,
			Width:      DefaultCanvasWidth,
			Height:     DefaultCanvasHeight,
		},
		Page: DefaultPageConfig(),
	}
}

// LoadRainConfig 加载雨滴动画配置
//
// 以 "data/" 开头的路径优先从嵌入资源读取，其余路径从磁盘读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/rain.yaml"）
//
// 返回:
//   - *RainConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadRainConfig(path string) (*RainConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rain config: %w", err)
	}

	return ParseRainConfig(data)
}

// ParseRainConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseRainConfig(data []byte) (*RainConfig, error) {
	config := DefaultRainConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse rain config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rain config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *RainConfig) Validate() error {
	if c.Droplets.Count <= 0 {
		return fmt.Errorf("droplet count must be positive, got %d", c.Droplets.Count)
	}

	ranges := []struct {
		name string
		r    RangeConfig
	}{
		{"length", c.Droplets.Length},
		{"velocityX", c.Droplets.VelocityX},
		{"velocityY", c.Droplets.VelocityY},
	}
	for _, rc := range ranges {
		if !finite(rc.r.Min) || !finite(rc.r.Max) {
			return fmt.Errorf("%s range must be finite, got [%v, %v]", rc.name, rc.r.Min, rc.r.Max)
		}
		if rc.r.Min > rc.r.Max {
			return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", rc.name, rc.r.Min, rc.r.Max)
		}
	}

	if !finite(c.Droplets.RespawnY) {
		return fmt.Errorf("respawnY must be finite, got %v", c.Droplets.RespawnY)
	}

	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tick interval must be positive, got %dms", c.TickIntervalMs)
	}

	if _, err := ParseRGBA(c.Stroke.Style); err != nil {
		return fmt.Errorf("stroke style: %w", err)
	}
	if !finite(c.Stroke.Width) || c.Stroke.Width <= 0 {
		return fmt.Errorf("stroke width must be positive, got %.2f", c.Stroke.Width)
	}
	if !validLineCaps[c.Stroke.Cap] {
		return fmt.Errorf("unknown line cap %q", c.Stroke.Cap)
	}

	if c.Canvas.ID == "" {
		return fmt.Errorf("canvas id must not be empty")
	}
	if _, err := ParseRGBA(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}

	return nil
}

// finite YAML 的 .nan/.inf 会绕过大小比较，需单独拒绝
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Params 转换为雨滴模型参数
func (c *RainConfig) Params() droplet.Params {
	return droplet.Params{
		Length:   droplet.Range{Min: c.Droplets.Length.Min, Max: c.Droplets.Length.Max},
		VX:       droplet.Range{Min: c.Droplets.VelocityX.Min, Max: c.Droplets.VelocityX.Max},
		VY:       droplet.Range{Min: c.Droplets.VelocityY.Min, Max: c.Droplets.VelocityY.Max},
		RespawnY: c.Droplets.RespawnY,
	}
}

// Interval 返回定时器间隔
func (c *RainConfig) Interval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// StrokeColor 返回线条颜色
// 配置未通过 Validate 时返回默认颜色
func (c *RainConfig) StrokeColor() color.NRGBA {
	if clr, err := ParseRGBA(c.Stroke.Style); err == nil {
		return clr
	}
	clr, _ := ParseRGBA(DefaultStrokeStyle)
	return clr
}

// BackgroundColor 返回画布背景色
func (c *RainConfig) BackgroundColor() color.NRGBA {
	if clr, err := ParseRGBA(c.Canvas.Background); err == nil {
		return clr
	}
	return color.NRGBA{A: 255}
}
