package driver

import (
	"sync"

	"cclex/internal/observ"
)

// TimingObserver records every phase into timer. The returned observer is safe
// to share between Tokenize calls running on different goroutines.
func TimingObserver(timer *observ.Timer) PhaseObserver {
	if timer == nil {
		return nil
	}
	var (
		mu   sync.Mutex
		open = make(map[string][]int)
	)
	return func(ev PhaseEvent) {
		mu.Lock()
		defer mu.Unlock()
		switch ev.Status {
		case PhaseStart:
			open[ev.Name] = append(open[ev.Name], timer.Begin(ev.Name))
		case PhaseEnd:
			stack := open[ev.Name]
			if len(stack) == 0 {
				return
			}
			idx := stack[len(stack)-1]
			open[ev.Name] = stack[:len(stack)-1]
			timer.EndWith(idx, ev.Elapsed, ev.Note)
		}
	}
}
