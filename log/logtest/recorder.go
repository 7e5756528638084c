// Package logtest provides a recording [log.Console] for tests.
//
// A [Recorder] captures every line written to each console channel:
//
//	rec := logtest.NewRecorder()
//	f := log.New(rec.Console())
//	f.SetLevel("INFO")
//	f.Logger().Info("hello")
//
//	entries := rec.Channel(logtest.ChannelInfo)
package logtest

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/consolelog/log"
)

const defaultLimit = 1024

// Channel names used in [Entry].
const (
	ChannelDebug = "debug"
	ChannelInfo  = "info"
	ChannelWarn  = "warn"
	ChannelError = "error"
)

// Entry is one write to a console channel.
type Entry struct {
	Channel string
	Text    string
}

// Plain returns Text with ANSI escape sequences and the trailing newline
// removed.
func (e Entry) Plain() string {
	return strings.TrimSuffix(ansi.Strip(e.Text), "\n")
}

// Styled reports whether Text contains ANSI escape sequences.
func (e Entry) Styled() bool {
	return ansi.Strip(e.Text) != e.Text
}

// Recorder records writes to the four channels of a [log.Console].
//
// Entries are kept in write order up to a limit; once the limit is reached
// the oldest entry is dropped for each new one, so writes never block or
// grow without bound. Safe for concurrent use.
//
// Create instances with [NewRecorder].
type Recorder struct {
	entries []Entry
	limit   int
	mu      sync.Mutex
}

// Option configures a [Recorder].
type Option func(*Recorder)

// WithLimit sets the maximum number of retained entries.
// Values less than 1 are clamped to 1.
func WithLimit(n int) Option {
	return func(r *Recorder) {
		if n < 1 {
			n = 1
		}

		r.limit = n
	}
}

// NewRecorder creates a [Recorder] with the given options.
// The default limit is 1024 entries.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		limit: defaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Console returns a [log.Console] whose channels record into r.
func (r *Recorder) Console() log.Console {
	return log.Console{
		Debug: channelWriter{r: r, name: ChannelDebug},
		Info:  channelWriter{r: r, name: ChannelInfo},
		Warn:  channelWriter{r: r, name: ChannelWarn},
		Error: channelWriter{r: r, name: ChannelError},
	}
}

// Entries returns a copy of every retained entry, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Channel returns the retained entries written to the named channel.
func (r *Recorder) Channel(name string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Entry

	for _, e := range r.entries {
		if e.Channel == name {
			out = append(out, e)
		}
	}

	return out
}

// Len returns the number of retained entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Reset drops every retained entry.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
	r.entries = r.entries[:0]
}

func (r *Recorder) record(channel string, b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Ring-buffer: drop oldest if full.
	if len(r.entries) >= r.limit {
		n := copy(r.entries, r.entries[1:])
		r.entries[n] = Entry{}
		r.entries = r.entries[:n]
	}

	r.entries = append(r.entries, Entry{Channel: channel, Text: string(b)})
}

type channelWriter struct {
	r    *Recorder
	name string
}

// Write records a copy of b and always returns len(b), nil.
func (w channelWriter) Write(b []byte) (int, error) {
	w.r.record(w.name, b)

	return len(b), nil
}
