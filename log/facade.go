package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// DefaultApp is the application name used until [Facade.SetApp] is called.
const DefaultApp = "unknown"

// TimeFormat is the layout of the timestamp in every prefix: ISO 8601 in UTC
// with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Console is the set of severity-tagged output channels a [Facade] writes to.
// Nil channels discard output.
type Console struct {
	Debug io.Writer
	Info  io.Writer
	Warn  io.Writer
	Error io.Writer
}

// NewConsole returns a [Console] that writes debug and info output to out and
// warn and error output to errOut.
func NewConsole(out, errOut io.Writer) Console {
	return Console{
		Debug: out,
		Info:  out,
		Warn:  errOut,
		Error: errOut,
	}
}

// StdConsole returns a [Console] bound to [os.Stdout] and [os.Stderr].
func StdConsole() Console {
	return NewConsole(os.Stdout, os.Stderr)
}

// Facade holds logging configuration and produces [FunctionSet] values bound
// to it. Configuration changes made through the setters are visible to every
// subsequent [Facade.Logger] call, but never to a [FunctionSet] obtained
// earlier. Safe for concurrent use.
//
// Create instances with [New].
type Facade struct {
	console     Console
	now         func() time.Time
	prefersDark func() bool

	app      string
	mu       sync.RWMutex
	noticeMu sync.Mutex
	level    Level
	enabled  bool
	colored  bool
	vivid    bool
	dark     bool
	source   bool
}

// Option configures a [Facade].
type Option func(*Facade)

// WithDarkModeDetector replaces the dark-background query sampled by
// [Facade.SetColored] and [Facade.SetVivid]. The default asks the terminal
// via [termenv.HasDarkBackground].
func WithDarkModeDetector(fn func() bool) Option {
	return func(f *Facade) {
		if fn != nil {
			f.prefersDark = fn
		}
	}
}

// WithClock replaces the time source used for prefix timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Facade) {
		if now != nil {
			f.now = now
		}
	}
}

// WithSource appends the file:line of the [Facade.Logger] call site to every
// emitted line.
func WithSource(enabled bool) Option {
	return func(f *Facade) {
		f.source = enabled
	}
}

// New creates a [Facade] writing to console. Logging notices are disabled,
// the minimum level is [LevelOff], the application is [DefaultApp], and
// color is off.
func New(console Console, opts ...Option) *Facade {
	f := &Facade{
		console:     console,
		now:         time.Now,
		prefersDark: termenv.HasDarkBackground,
		app:         DefaultApp,
		level:       LevelOff,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// ParseLevel is the package-level [ParseLevel] plus a debug notice naming
// the parsed level when logging is enabled.
func (f *Facade) ParseLevel(s string) Level {
	lvl := ParseLevel(s)

	f.mu.RLock()
	line := f.noticeLine("level set to " + lvl.describe())
	f.mu.RUnlock()

	write(f.console.Debug, line)

	return lvl
}

// SetLevel sets the minimum level from its name. Unrecognized names set
// [LevelUnknown], which suppresses all output. Always returns true.
func (f *Facade) SetLevel(name string) bool {
	lvl := ParseLevel(name)

	f.mu.Lock()
	line := f.noticeLine("level set to " + lvl.describe())
	f.level = lvl
	f.publish(line)

	return true
}

// SetApp sets the application name shown in every prefix. Always returns
// true.
func (f *Facade) SetApp(name string) bool {
	f.mu.Lock()
	line := f.noticeLine("app set to " + name)
	f.app = name
	f.publish(line)

	return true
}

// SetColored toggles pale styling and re-samples the dark-mode preference.
// Always returns true.
func (f *Facade) SetColored(enabled bool) bool {
	dark := f.prefersDark()

	f.mu.Lock()
	f.dark = dark
	line := f.noticeLine("colored " + onOff(enabled) + darkSuffix(dark))
	f.colored = enabled
	f.publish(line)

	return true
}

// SetVivid toggles vivid styling and re-samples the dark-mode preference.
// Vivid takes precedence over pale styling when both are on. Always returns
// true.
func (f *Facade) SetVivid(enabled bool) bool {
	dark := f.prefersDark()

	f.mu.Lock()
	f.dark = dark
	line := f.noticeLine("vivid " + onOff(enabled) + darkSuffix(dark))
	f.vivid = enabled
	f.publish(line)

	return true
}

// SetLogging toggles configuration notices. The transition is announced only
// if notices were enabled before the call. Always returns true.
func (f *Facade) SetLogging(enabled bool) bool {
	f.mu.Lock()
	line := f.noticeLine("logging " + onOff(enabled))
	f.enabled = enabled
	f.publish(line)

	return true
}

// Level returns the current minimum level.
func (f *Facade) Level() Level {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.level
}

// App returns the current application name.
func (f *Facade) App() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.app
}

// Colored reports whether pale styling is on.
func (f *Facade) Colored() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.colored
}

// Vivid reports whether vivid styling is on.
func (f *Facade) Vivid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.vivid
}

// LoggingEnabled reports whether configuration notices are emitted.
func (f *Facade) LoggingEnabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.enabled
}

// DarkMode returns the dark-mode preference sampled by the last color setter.
func (f *Facade) DarkMode() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.dark
}

// Settings is a complete facade configuration, as loaded from flags or a
// settings file by [Config].
type Settings struct {
	Level   string `json:"level,omitempty"   yaml:"level,omitempty"   jsonschema:"minimum level, one of TRACE DEBUG INFO WARN ERROR FATAL OFF"`
	App     string `json:"app,omitempty"     yaml:"app,omitempty"     jsonschema:"application name shown in every prefix"`
	Colored bool   `json:"colored,omitempty" yaml:"colored,omitempty" jsonschema:"enable pale styling"`
	Vivid   bool   `json:"vivid,omitempty"   yaml:"vivid,omitempty"   jsonschema:"enable vivid styling"`
	Logging bool   `json:"logging,omitempty" yaml:"logging,omitempty" jsonschema:"emit notices when configuration changes"`
}

// Apply runs the setters for s in order: logging, level, app, colored,
// vivid. Empty Level and App leave the current values unchanged.
func (f *Facade) Apply(s Settings) {
	f.SetLogging(s.Logging)

	if s.Level != "" {
		f.SetLevel(s.Level)
	}

	if s.App != "" {
		f.SetApp(s.App)
	}

	f.SetColored(s.Colored)
	f.SetVivid(s.Vivid)
}

// publish releases f.mu, which the caller holds for writing, and then writes
// line. Notices are written in the order their changes were committed.
func (f *Facade) publish(line string) {
	f.noticeMu.Lock()
	defer f.noticeMu.Unlock()

	f.mu.Unlock()
	write(f.console.Debug, line)
}

// noticeLine formats a configuration notice for the debug channel, or
// returns "" when notices are off. Callers hold f.mu and write the line
// after releasing it, so a console that logs back through f cannot deadlock.
func (f *Facade) noticeLine(msg string) string {
	if !f.enabled {
		return ""
	}

	return prefix(f.now(), LevelDebug.String(), f.app) + msg + "\n"
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func darkSuffix(dark bool) string {
	if dark {
		return " (dark mode)"
	}

	return " (light mode)"
}
