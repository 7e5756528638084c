package log_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/consolelog/log"
	"go.jacobcolvin.com/consolelog/log/logtest"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		logFunc func(*slog.Logger)
		level   string
		channel string
		want    string
	}{
		"info passes info": {
			level:   "INFO",
			logFunc: func(l *slog.Logger) { l.Info("test message", "key", "value") },
			channel: logtest.ChannelInfo,
			want:    testStamp + " [INFO] (h)  test message key=value",
		},
		"info blocks debug": {
			level:   "INFO",
			logFunc: func(l *slog.Logger) { l.Debug("test message") },
		},
		"debug passes debug": {
			level:   "DEBUG",
			logFunc: func(l *slog.Logger) { l.Debug("test message") },
			channel: logtest.ChannelDebug,
			want:    testStamp + " [DEBUG] (h)  test message",
		},
		"warn": {
			level:   "TRACE",
			logFunc: func(l *slog.Logger) { l.Warn("test message") },
			channel: logtest.ChannelWarn,
			want:    testStamp + " [WARN] (h)  test message",
		},
		"error with group": {
			level: "ERROR",
			logFunc: func(l *slog.Logger) {
				l.WithGroup("req").With("id", 7).Error("test message", "code", 500)
			},
			channel: logtest.ChannelError,
			want:    testStamp + " [ERROR] (h)  test message req.id=7 req.code=500",
		},
		"off blocks error": {
			level:   "OFF",
			logFunc: func(l *slog.Logger) { l.Error("test message") },
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, rec := newTestFacade(t)
			f.SetLevel(tc.level)
			f.SetApp("h")

			tc.logFunc(slog.New(log.NewHandler(f)))

			entries := rec.Entries()
			if tc.want == "" {
				assert.Empty(t, entries)

				return
			}

			require.Len(t, entries, 1)
			assert.Equal(t, tc.channel, entries[0].Channel)
			assert.Equal(t, tc.want, entries[0].Plain())
		})
	}
}
