package overlay

import (
	"sync"
	"time"
)

// Timer is a restartable periodic tick source.
type Timer interface {
	Start()
	Stop()
	Running() bool
}

// TimerFactory builds the timer for one tick kind.
type TimerFactory func(kind TickKind, interval time.Duration, post func(Event)) Timer

// tickerTimer posts a Tick on every period until stopped. Start restarts
// the period.
type tickerTimer struct {
	kind       TickKind
	interval   time.Duration
	post       func(Event)
	ticker     *time.Ticker
	cancelFunc func() // Stops the current goroutine
	mutex      sync.Mutex
}

// NewTickerTimer is the default TimerFactory.
func NewTickerTimer(kind TickKind, interval time.Duration, post func(Event)) Timer {
	return &tickerTimer{kind: kind, interval: interval, post: post}
}

func (t *tickerTimer) Start() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stopLocked()

	ticker := time.NewTicker(t.interval)
	done := make(chan struct{})
	t.ticker = ticker
	t.cancelFunc = func() { close(done) }

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.post(Tick{Kind: t.kind})
			case <-done:
				return
			}
		}
	}()
}

func (t *tickerTimer) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stopLocked()
}

func (t *tickerTimer) stopLocked() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	if t.cancelFunc != nil {
		t.cancelFunc()
		t.cancelFunc = nil
	}
}

func (t *tickerTimer) Running() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.cancelFunc != nil
}
