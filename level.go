package pulselog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a syslog severity. Lower values are more severe.
type Level int32

const (
	LevelEmergency Level = iota
	LevelAlert
	LevelCritical
	LevelError
	LevelWarning
	LevelNotice
	LevelInfo
	LevelDebug
)

var levelLabels = [...]string{
	LevelEmergency: "EMERGENCY",
	LevelAlert:     "ALERT",
	LevelCritical:  "CRITICAL",
	LevelError:     "ERROR",
	LevelWarning:   "WARNING",
	LevelNotice:    "NOTICE",
	LevelInfo:      "INFORMATIONAL",
	LevelDebug:     "DEBUG",
}

// labelIndex maps lower-case labels and their common aliases to levels.
var labelIndex = map[string]Level{
	"emergency":     LevelEmergency,
	"emerg":         LevelEmergency,
	"panic":         LevelEmergency,
	"fatal":         LevelEmergency,
	"alert":         LevelAlert,
	"critical":      LevelCritical,
	"crit":          LevelCritical,
	"error":         LevelError,
	"err":           LevelError,
	"warning":       LevelWarning,
	"warn":          LevelWarning,
	"notice":        LevelNotice,
	"info":          LevelInfo,
	"informational": LevelInfo,
	"information":   LevelInfo,
	"debug":         LevelDebug,
}

// Levels returns every level, most severe first.
func Levels() []Level {
	return []Level{
		LevelEmergency,
		LevelAlert,
		LevelCritical,
		LevelError,
		LevelWarning,
		LevelNotice,
		LevelInfo,
		LevelDebug,
	}
}

// Valid reports whether l is one of the eight defined levels.
func (l Level) Valid() bool {
	return l >= LevelEmergency && l <= LevelDebug
}

// String returns the upper-case label, also used as the message prefix.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
	return levelLabels[l]
}

// ParseLevel converts v into a Level. Labels are matched case-insensitively,
// integers in range (or their decimal strings) pass through, and anything else yields LevelInfo.
// It never fails.
func ParseLevel(v any) Level {
	switch x := v.(type) {
	case Level:
		return inRange(int64(x))
	case string:
		return parseLabel(x)
	case fmt.Stringer:
		return parseLabel(x.String())
	case int:
		return inRange(int64(x))
	case int8:
		return inRange(int64(x))
	case int16:
		return inRange(int64(x))
	case int32:
		return inRange(int64(x))
	case int64:
		return inRange(x)
	case uint:
		return inRange(int64(x))
	case uint8:
		return inRange(int64(x))
	case uint16:
		return inRange(int64(x))
	case uint32:
		return inRange(int64(x))
	case uint64:
		if x > uint64(LevelDebug) {
			return LevelInfo
		}
		return Level(x)
	default:
		return LevelInfo
	}
}

// parseLabel also accepts decimal numbers, as delivered by env vars and
// quoted YAML values.
func parseLabel(s string) Level {
	s = strings.TrimSpace(s)
	if l, ok := labelIndex[strings.ToLower(s)]; ok {
		return l
	}
	if n, err := strconv.Atoi(s); err == nil {
		return inRange(int64(n))
	}
	return LevelInfo
}

func inRange(n int64) Level {
	if n < int64(LevelEmergency) || n > int64(LevelDebug) {
		return LevelInfo
	}
	return Level(n)
}
