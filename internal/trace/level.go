package trace

import (
	"fmt"
	"strings"
)

// Level selects which scopes reach the output.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // только дамп кольца при ошибке
	LevelPhase        // driver + phases
	LevelDetail       // + files
	LevelDebug        // всё, включая узлы
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// finest is the finest scope a level keeps; LevelOff and LevelError keep none
// in a stream.
var finest = [...]Scope{LevelPhase: ScopePhase, LevelDetail: ScopeFile, LevelDebug: ScopeNode}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel maps a flag or config value to a Level; "" is off.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LevelOff, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope are kept at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(finest) {
		return false
	}
	return scope <= finest[l]
}
