package timer

import (
	"sync"
	"time"
)

// Schedule is a handle to a repeating tick. Stop may be called any number of
// times and never blocks.
type Schedule interface {
	Stop()
}

// Scheduler arranges for fn to be called every interval until the returned
// Schedule is stopped.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Schedule
}

// TickerScheduler drives ticks from a time.Ticker on its own goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) Schedule {
	if interval <= 0 {
		interval = time.Second
	}
	s := &tickerSchedule{stopCh: make(chan struct{})}
	go s.run(interval, fn)
	return s
}

type tickerSchedule struct {
	once   sync.Once
	stopCh chan struct{}
}

func (s *tickerSchedule) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			select {
			case <-s.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

func (s *tickerSchedule) Stop() {
	s.once.Do(func() { close(s.stopCh) })
}
