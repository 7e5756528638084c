package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/davecgh/go-spew/spew"
)

// Func is one bound output function of a [FunctionSet]. It writes its
// arguments after the prefix captured when the set was created.
type Func func(args ...any)

// Entry names, in the order [FunctionSet.Names] returns them.
const (
	EntryTrace  = "trace"
	EntryDebug  = "debug"
	EntryLog    = "log"
	EntryInfo   = "info"
	EntryObject = "object"
	EntryWarn   = "warn"
	EntryError  = "error"
	EntryErrObj = "errobj"
	EntryFatal  = "fatal"
)

// FunctionSet is the nine output functions returned by [Facade.Logger].
// Entries below the minimum level are no-ops. Each enabled entry carries the
// timestamp, application name, and style in effect when the set was
// created, so obtain a fresh set at every call site:
//
//	f.Logger().Info("connected to", host)
type FunctionSet struct {
	Trace  Func
	Debug  Func
	Log    Func
	Info   Func
	Object Func
	Warn   Func
	Error  Func
	ErrObj Func
	Fatal  Func
}

// Names returns every entry name of a [FunctionSet].
func (FunctionSet) Names() []string {
	return []string{
		EntryTrace, EntryDebug, EntryLog, EntryInfo, EntryObject,
		EntryWarn, EntryError, EntryErrObj, EntryFatal,
	}
}

// Func returns the entry with the given name.
func (s FunctionSet) Func(name string) (Func, bool) {
	switch name {
	case EntryTrace:
		return s.Trace, true
	case EntryDebug:
		return s.Debug, true
	case EntryLog:
		return s.Log, true
	case EntryInfo:
		return s.Info, true
	case EntryObject:
		return s.Object, true
	case EntryWarn:
		return s.Warn, true
	case EntryError:
		return s.Error, true
	case EntryErrObj:
		return s.ErrObj, true
	case EntryFatal:
		return s.Fatal, true
	}

	return nil, false
}

type channel int

const (
	chanDebug channel = iota
	chanInfo
	chanWarn
	chanError
)

type entrySpec struct {
	styles  *StyleTable
	level   Level
	channel channel
	object  bool
}

var (
	traceSpec  = entrySpec{level: LevelTrace, channel: chanDebug, styles: &traceStyles}
	debugSpec  = entrySpec{level: LevelDebug, channel: chanDebug, styles: &debugStyles}
	logSpec    = entrySpec{level: LevelInfo, channel: chanInfo, styles: &infoStyles}
	infoSpec   = entrySpec{level: LevelInfo, channel: chanInfo, styles: &infoStyles}
	objectSpec = entrySpec{level: LevelInfo, channel: chanInfo, styles: &objectStyles, object: true}
	warnSpec   = entrySpec{level: LevelWarn, channel: chanWarn, styles: &warnStyles}
	errorSpec  = entrySpec{level: LevelError, channel: chanError, styles: &errorStyles}
	errObjSpec = entrySpec{level: LevelError, channel: chanError, styles: &errorStyles, object: true}
	fatalSpec  = entrySpec{level: LevelFatal, channel: chanError, styles: &fatalStyles}
)

// snapshot is the configuration read once per [Facade.Logger] call.
type snapshot struct {
	ts      time.Time
	app     string
	source  string
	level   Level
	colored bool
	vivid   bool
	dark    bool
}

// Logger returns a fresh [FunctionSet] bound to the current configuration.
// All nine entries are built on every call.
func (f *Facade) Logger() FunctionSet {
	f.mu.RLock()
	snap := snapshot{
		ts:      f.now(),
		app:     f.app,
		level:   f.level,
		colored: f.colored,
		vivid:   f.vivid,
		dark:    f.dark,
	}
	withSource := f.source
	f.mu.RUnlock()

	if withSource {
		snap.source = callerSource(2)
	}

	return FunctionSet{
		Trace:  f.bind(traceSpec, snap),
		Debug:  f.bind(debugSpec, snap),
		Log:    f.bind(logSpec, snap),
		Info:   f.bind(infoSpec, snap),
		Object: f.bind(objectSpec, snap),
		Warn:   f.bind(warnSpec, snap),
		Error:  f.bind(errorSpec, snap),
		ErrObj: f.bind(errObjSpec, snap),
		Fatal:  f.bind(fatalSpec, snap),
	}
}

func noop(...any) {}

// bind builds one entry. A fresh no-op is returned when the entry is below
// the minimum level.
func (f *Facade) bind(spec entrySpec, snap snapshot) Func {
	if spec.level < snap.level {
		return noop
	}

	w := f.writer(spec.channel)
	pfx := prefix(snap.ts, spec.level.String(), snap.app)
	style := selectStyle(*spec.styles, snap.vivid, snap.colored, snap.dark)
	object := spec.object
	source := snap.source

	return func(args ...any) {
		write(w, render(style, pfx, object, source, args))
	}
}

func (f *Facade) writer(c channel) io.Writer {
	switch c {
	case chanDebug:
		return f.console.Debug
	case chanInfo:
		return f.console.Info
	case chanWarn:
		return f.console.Warn
	}

	return f.console.Error
}

// prefix formats "[<ts>] [<LEVEL>] (<app>)  ".
func prefix(ts time.Time, level, app string) string {
	return "[" + ts.UTC().Format(TimeFormat) + "] [" + level + "] (" + app + ")  "
}

// render assembles one output line. The first argument is joined to the
// prefix and shares its style; the rest follow, separated by spaces.
func render(style *lipgloss.Style, pfx string, object bool, source string, args []any) string {
	var sb strings.Builder

	head := pfx
	if len(args) > 0 {
		if object {
			head += dump(args[0])
		} else {
			head += text(args[0])
		}

		args = args[1:]
	}

	if style != nil {
		sb.WriteString(style.Render(head))
	} else {
		sb.WriteString(head)
	}

	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(text(arg))
	}

	if source != "" {
		sb.WriteString(" (")
		sb.WriteString(source)
		sb.WriteByte(')')
	}

	sb.WriteByte('\n')

	return sb.String()
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// text renders a value the way %s would. fmt prefers Error and String and
// recovers from nil receivers and panicking methods.
func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// dump renders a value structurally. Errors and strings are shown as text.
func dump(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case error:
		return fmt.Sprintf("%+v", v)
	}

	return spewConfig.Sprintf("%+v", v)
}

// callerSource returns "file.go:line" for the caller skip frames above this
// function.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}

	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// write swallows errors so that logging can never fail the caller. Empty
// lines are not written.
func write(w io.Writer, s string) {
	if w == nil || s == "" {
		return
	}

	_, _ = io.WriteString(w, s)
}
