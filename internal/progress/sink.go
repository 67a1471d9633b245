package progress

import "sync"

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Recorder keeps every event in memory; used by tests and the plain-text summary.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(evt Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Emit sends evt to sink if sink is non-nil.
func Emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// EmitQueued marks every file as queued.
func EmitQueued(sink Sink, files []string) {
	for _, f := range files {
		Emit(sink, Event{File: f, Stage: StageLoad, Status: StatusQueued})
	}
}

// TimingSink sums Elapsed of finished events per stage and forwards every event to Next.
type TimingSink struct {
	Next Sink

	mu      sync.Mutex
	timings Timings
	files   map[Stage]int
}

func (s *TimingSink) OnEvent(evt Event) {
	if evt.Status == StatusDone || evt.Status == StatusError {
		s.mu.Lock()
		s.timings.Add(evt.Stage, evt.Elapsed)
		if s.files == nil {
			s.files = make(map[Stage]int)
		}
		s.files[evt.Stage]++
		s.mu.Unlock()
	}
	Emit(s.Next, evt)
}

// Timings returns the accumulated durations and the number of finished events per stage.
func (s *TimingSink) Timings() (Timings, map[Stage]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out Timings
	counts := make(map[Stage]int, len(s.files))
	for stage, n := range s.files {
		out.Add(stage, s.timings.Duration(stage))
		counts[stage] = n
	}
	return out, counts
}
