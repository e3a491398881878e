//go:build js && wasm

package rain

import (
	"sync"
	"syscall/js"
	"time"
)

// JSIntervalScheduler schedules ticks with window.setInterval. Callbacks run
// on the browser event loop, one at a time; a busy page delays them and the
// browser never replays the missed ones.
type JSIntervalScheduler struct{}

// Every implements Scheduler.
func (JSIntervalScheduler) Every(interval time.Duration, fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn()
		return nil
	})
	handle := js.Global().Call("setInterval", cb, interval.Milliseconds())

	var once sync.Once
	return func() {
		once.Do(func() {
			js.Global().Call("clearInterval", handle)
			cb.Release()
		})
	}
}
