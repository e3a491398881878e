package app

import (
	"errors"
	"testing"

	"github.com/decker502/rain/pkg/config"
	"github.com/decker502/rain/pkg/rain"
)

func TestNewApp_Defaults(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, Seed: 1})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	defer a.Close()

	if w, h := a.Layout(1920, 1080); w != config.DefaultCanvasWidth || h != config.DefaultCanvasHeight {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, config.DefaultCanvasWidth, config.DefaultCanvasHeight)
	}
	if n := len(a.Session().Droplets()); n != config.DefaultDropletCount {
		t.Errorf("droplets = %d, want %d", n, config.DefaultDropletCount)
	}
	if a.background.A != 255 {
		t.Errorf("background = %+v, want opaque", a.background)
	}
}

// TestApp_UpdateDrivesTicks 测试 Update 按帧累计时间驱动雨滴
func TestApp_UpdateDrivesTicks(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, Width: 320, Height: 240, Seed: 3})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	defer a.Close()

	// 60 TPS 下每帧约 16.7ms，第二帧达到 30ms 间隔
	if err := a.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if a.Session().Ticks() != 0 {
		t.Errorf("Ticks() after one frame = %d, want 0", a.Session().Ticks())
	}

	if err := a.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if a.Session().Ticks() != 1 {
		t.Errorf("Ticks() after two frames = %d, want 1", a.Session().Ticks())
	}
	if a.surface.Lines() != config.DefaultDropletCount {
		t.Errorf("Lines() = %d, want %d", a.surface.Lines(), config.DefaultDropletCount)
	}
}

func TestApp_Close(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, Width: 100, Height: 100, Seed: 1})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	a.Close()
	if !a.Session().Stopped() {
		t.Error("session still running after Close()")
	}
	if a.scheduler.Len() != 0 {
		t.Errorf("scheduler still has %d registrations", a.scheduler.Len())
	}

	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Session().Ticks() != 0 {
		t.Errorf("ticks advanced after Close(): %d", a.Session().Ticks())
	}
}

func TestNewApp_SetupFailure(t *testing.T) {
	if _, err := NewApp(Config{Verbose: true, Width: -1, Height: 100}); !errors.Is(err, rain.ErrSetup) {
		t.Errorf("expected ErrSetup, got %v", err)
	}

	bad := config.DefaultRainConfig()
	bad.Droplets.Count = 0
	if _, err := NewApp(Config{Verbose: true, Rain: bad}); !errors.Is(err, rain.ErrSetup) {
		t.Errorf("expected ErrSetup for invalid config, got %v", err)
	}
}
