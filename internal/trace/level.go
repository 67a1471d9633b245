package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // только дамп кольца при падении
	LevelPhase        // команда и проходы
	LevelDetail       // плюс единицы трансляции
	LevelDebug        // плюс каждый токен
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// deepest scope each level lets through; LevelError never streams.
var levelScope = [...]Scope{LevelPhase: ScopePass, LevelDetail: ScopeUnit, LevelDebug: ScopeToken}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(s)
	for i, name := range levelNames {
		if name == want {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScope) {
		return false
	}
	return scope != 0 && scope <= levelScope[l]
}
