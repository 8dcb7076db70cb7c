package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level is the agent log verbosity, ordered from most to least verbose.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
	LevelCritical
	LevelOff
)

var levelNames = []string{
	LevelTrace:       "Trace",
	LevelDebug:       "Debug",
	LevelInformation: "Information",
	LevelWarning:     "Warning",
	LevelError:       "Error",
	LevelCritical:    "Critical",
	LevelOff:         "Off",
}

// String returns the canonical level name.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "Error"
	}
	return levelNames[l]
}

// Zerolog maps the agent level onto the corresponding zerolog level.
func (l Level) Zerolog() zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInformation:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelCritical:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.ErrorLevel
	}
}

// ParseLevel matches raw case-insensitively against the level names.
func ParseLevel(raw string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(raw, name) {
			return Level(i), nil
		}
	}
	return LevelError, newParseError(raw, "unrecognized log level", nil)
}
