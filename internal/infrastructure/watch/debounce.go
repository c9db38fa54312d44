// Package watch turns a drop folder into an upload feed: files that
// appear or finish writing are handed to a callback once their events
// settle.
package watch

import (
	"sync"
	"time"
)

// keyedDebouncer coalesces rapid events per key into a single callback
// invocation. Each key gets its own window, so a half-written file does
// not delay an unrelated one.
type keyedDebouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timers   map[string]*time.Timer
	callback func(key string)
}

func newKeyedDebouncer(window time.Duration, callback func(string)) *keyedDebouncer {
	return &keyedDebouncer{
		window:   window,
		timers:   make(map[string]*time.Timer),
		callback: callback,
	}
}

// Trigger resets the debounce timer for key. The callback fires after the
// window elapses with no further triggers for that key.
func (d *keyedDebouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		d.callback(key)
	})
}

// Stop cancels every pending callback.
func (d *keyedDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
