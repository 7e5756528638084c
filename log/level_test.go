package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/consolelog/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected log.Level
	}{
		"trace":      {input: "TRACE", expected: log.LevelTrace},
		"debug":      {input: "DEBUG", expected: log.LevelDebug},
		"info":       {input: "INFO", expected: log.LevelInfo},
		"warn":       {input: "WARN", expected: log.LevelWarn},
		"error":      {input: "ERROR", expected: log.LevelError},
		"fatal":      {input: "FATAL", expected: log.LevelFatal},
		"off":        {input: "OFF", expected: log.LevelOff},
		"lower case": {input: "debug", expected: log.LevelUnknown},
		"mixed case": {input: "Warn", expected: log.LevelUnknown},
		"empty":      {input: "", expected: log.LevelUnknown},
		"arbitrary":  {input: "XYZ", expected: log.LevelUnknown},
		"padded":     {input: " INFO", expected: log.LevelUnknown},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, log.ParseLevel(tc.input))
		})
	}
}

func TestLevelOrdinals(t *testing.T) {
	t.Parallel()

	for i, name := range log.GetAllLevelStrings() {
		assert.Equal(t, log.Level(i), log.ParseLevel(name), name)
	}

	assert.Equal(t, log.Level(9), log.LevelUnknown)
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level log.Level
		want  string
	}{
		"known":        {level: log.LevelWarn, want: "WARN"},
		"off":          {level: log.LevelOff, want: "OFF"},
		"unknown":      {level: log.LevelUnknown, want: "UNKNOWN"},
		"out of range": {level: log.Level(7), want: "UNKNOWN"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.level.String())
		})
	}
}
