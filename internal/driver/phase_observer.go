package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a run-wide phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names reported to PhaseObserver.
const (
	PhaseLoad = "load"
	PhaseLex  = "lex"
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration // только для PhaseEnd
	Note    string
}

// PhaseObserver receives phase events emitted by Tokenize and TokenizeDir.
type PhaseObserver func(PhaseEvent)

type phaseRun struct {
	obs   PhaseObserver
	name  string
	start time.Time
}

func startPhase(obs PhaseObserver, name string) phaseRun {
	if obs != nil {
		obs(PhaseEvent{Name: name, Status: PhaseStart})
	}
	return phaseRun{obs: obs, name: name, start: time.Now()}
}

func (p phaseRun) end(note string) {
	if p.obs != nil {
		p.obs(PhaseEvent{Name: p.name, Status: PhaseEnd, Elapsed: time.Since(p.start), Note: note})
	}
}
