package rain

import (
	"sync/atomic"
	"testing"
	"time"
)

// TestFrameScheduler_Advance 测试按帧累计时间触发
func TestFrameScheduler_Advance(t *testing.T) {
	s := NewFrameScheduler()
	fired := 0
	cancel := s.Every(30*time.Millisecond, func() { fired++ })

	steps := []struct {
		elapsed time.Duration
		want    int
	}{
		{16 * time.Millisecond, 0},
		{16 * time.Millisecond, 1},  // 32ms, 2ms 余量
		{16 * time.Millisecond, 1},  // 18ms
		{16 * time.Millisecond, 2},  // 34ms
		{500 * time.Millisecond, 3}, // 积压不补帧
		{16 * time.Millisecond, 3},
	}

	for i, step := range steps {
		s.Advance(step.elapsed)
		if fired != step.want {
			t.Fatalf("step %d: fired = %d, want %d", i, fired, step.want)
		}
	}

	cancel()
	cancel()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after cancel, want 0", s.Len())
	}
	s.Advance(time.Second)
	if fired != 3 {
		t.Errorf("fired after cancel: %d", fired)
	}
}

// TestFrameScheduler_Order 测试多个注册按注册顺序触发
func TestFrameScheduler_Order(t *testing.T) {
	s := NewFrameScheduler()
	var order []string
	s.Every(10*time.Millisecond, func() { order = append(order, "a") })
	s.Every(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(10 * time.Millisecond)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}

// TestIntervalScheduler 测试定时器触发与取消
func TestIntervalScheduler(t *testing.T) {
	var count atomic.Int64
	cancel := IntervalScheduler{}.Every(time.Millisecond, func() { count.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("only %d ticks within 2s", count.Load())
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	cancel()
	after := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != after {
		t.Errorf("ticks continued after cancel: %d -> %d", after, count.Load())
	}
}

// TestIntervalScheduler_NoOverlap 测试慢 tick 不会并发执行
func TestIntervalScheduler_NoOverlap(t *testing.T) {
	var running, overlaps, count atomic.Int64
	cancel := IntervalScheduler{}.Every(time.Millisecond, func() {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		count.Add(1)
	})

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	if overlaps.Load() != 0 {
		t.Errorf("%d overlapping ticks", overlaps.Load())
	}
}
