package log

import (
	"errors"
	"strconv"
)

// Level is an ordered message severity. A message at level L is emitted
// only when L is at or above the [Facade]'s minimum level.
type Level int

const (
	// LevelTrace is the most verbose level.
	LevelTrace Level = 0
	// LevelDebug is for diagnostic detail.
	LevelDebug Level = 1
	// LevelInfo is for general informational messages.
	LevelInfo Level = 2
	// LevelWarn is for potentially problematic situations.
	LevelWarn Level = 3
	// LevelError is for failures.
	LevelError Level = 4
	// LevelFatal is for failures the caller cannot recover from.
	LevelFatal Level = 5
	// LevelOff suppresses all output when used as the minimum level.
	LevelOff Level = 6
	// LevelUnknown is returned by [ParseLevel] for unrecognized input.
	LevelUnknown Level = 9
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrReadConfig indicates a settings file could not be read.
	ErrReadConfig = errors.New("read log config")
	// ErrParseConfig indicates a settings file could not be decoded or
	// failed validation.
	ErrParseConfig = errors.New("parse log config")
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
	LevelOff:   "OFF",
}

// String returns the upper-case level name, or "UNKNOWN" for anything
// [ParseLevel] would not produce from a valid name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return "UNKNOWN"
}

// describe is String plus the numeric code for unknown levels.
func (l Level) describe() string {
	if _, ok := levelNames[l]; ok {
		return l.String()
	}

	return "UNKNOWN (" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel maps an exact, upper-case level name to its [Level]. Matching is
// case-sensitive; any other input, including the empty string, yields
// [LevelUnknown]. It never fails.
func ParseLevel(s string) Level {
	for lvl, name := range levelNames {
		if name == s {
			return lvl
		}
	}

	return LevelUnknown
}

// GetAllLevelStrings returns every name accepted by [ParseLevel], in
// severity order.
func GetAllLevelStrings() []string {
	return []string{
		LevelTrace.String(),
		LevelDebug.String(),
		LevelInfo.String(),
		LevelWarn.String(),
		LevelError.String(),
		LevelFatal.String(),
		LevelOff.String(),
	}
}
