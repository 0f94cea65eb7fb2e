package cpu

import "sync"

// Dispatcher runs posted functions on a designated delivery context.
type Dispatcher interface {
	// Post schedules fn and reports whether it was accepted.
	Post(fn func()) bool
}

// SerialDispatcher runs posted functions one at a time, in post order,
// on a single goroutine.
type SerialDispatcher struct {
	tasks  chan func()
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

func NewSerialDispatcher(buffer int) *SerialDispatcher {
	if buffer < 1 {
		buffer = 1
	}

	d := &SerialDispatcher{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go d.loop()

	return d
}

func (d *SerialDispatcher) loop() {
	defer close(d.done)

	for fn := range d.tasks {
		fn()
	}
}

// Post blocks while the buffer is full. It must not be called from a
// posted function when the buffer may be full.
func (d *SerialDispatcher) Post(fn func()) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed || fn == nil {
		return false
	}

	d.tasks <- fn

	return true
}

// Close runs the already posted functions and stops the goroutine.
func (d *SerialDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	<-d.done
}
