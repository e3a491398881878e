package rain

import (
	"errors"
	"testing"
)

func startManual(t *testing.T, sched *manualScheduler) func() (*Session, error) {
	t.Helper()
	return func() (*Session, error) {
		return Start(&recordingSurface{}, 100, 100, WithScheduler(sched), WithConfig(singleDropletConfig()), WithSeed(1))
	}
}

// TestSlot_RefusesSecondLaunch 测试同一时间只允许一个会话
func TestSlot_RefusesSecondLaunch(t *testing.T) {
	var slot Slot
	first := &manualScheduler{}
	if err := slot.Launch(startManual(t, first)); err != nil {
		t.Fatalf("first Launch() error: %v", err)
	}
	running := slot.Session()

	second := &manualScheduler{}
	if err := slot.Launch(startManual(t, second)); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Launch() error = %v, want ErrRunning", err)
	}
	if second.registered != 0 {
		t.Errorf("refused launch registered %d timers", second.registered)
	}
	if slot.Session() != running {
		t.Error("refused launch replaced the running session")
	}
}

// TestSlot_StopAllowsRelaunch 测试停止后可以重新启动
func TestSlot_StopAllowsRelaunch(t *testing.T) {
	var slot Slot
	first := &manualScheduler{}
	if err := slot.Launch(startManual(t, first)); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	old := slot.Session()

	slot.Stop()
	slot.Stop()
	if first.cancels != 1 {
		t.Errorf("cancels = %d, want 1", first.cancels)
	}
	if !old.Stopped() || slot.Session() != nil {
		t.Error("Stop() did not stop and release the session")
	}

	if err := slot.Launch(startManual(t, &manualScheduler{})); err != nil {
		t.Fatalf("Launch() after Stop() error: %v", err)
	}
	if slot.Session() == nil || slot.Session() == old {
		t.Error("relaunch did not install a new session")
	}
}

// TestSlot_ExternallyStoppedSession 测试会话被直接停止后槽位可复用
func TestSlot_ExternallyStoppedSession(t *testing.T) {
	var slot Slot
	if err := slot.Launch(startManual(t, &manualScheduler{})); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	slot.Session().Stop()

	if err := slot.Launch(startManual(t, &manualScheduler{})); err != nil {
		t.Errorf("Launch() after external Stop() error: %v", err)
	}
}

// TestSlot_FailedStartKeepsSlotEmpty 测试启动失败不占用槽位
func TestSlot_FailedStartKeepsSlotEmpty(t *testing.T) {
	var slot Slot
	err := slot.Launch(func() (*Session, error) {
		return Start(nil, 100, 100)
	})
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("Launch() error = %v, want ErrSetup", err)
	}
	if slot.Session() != nil {
		t.Error("failed launch left a session in the slot")
	}
}
