// Package log provides a leveled console logging facade with timestamped,
// application-tagged prefixes and optional colored output.
//
// A [Facade] holds the configuration: minimum [Level], application name,
// pale and vivid color modes, and whether configuration changes are
// announced. [Facade.Logger] returns a [FunctionSet] of nine output
// functions (trace, debug, log, info, object, warn, error, errobj, fatal),
// each already bound to a [Console] channel, a prefix, and a style:
//
//	f := log.New(log.StdConsole())
//	f.SetLevel("DEBUG")
//	f.SetApp("sync")
//	f.SetVivid(true)
//
//	f.Logger().Info("connected to", host)
//	// [2026-10-19T08:30:00.000Z] [INFO] (sync)  connected to example.org
//
// The prefix timestamp and styling are captured when Logger is called, not
// when the returned function runs, so call Logger at every call site rather
// than holding on to a [FunctionSet].
//
// Styles are selected in order vivid+dark, vivid+light, pale+dark,
// pale+light, then plain. Warn has no pale variant, and fatal uses the same
// vivid style on every background and for pale mode. The dark-background
// preference is sampled whenever [Facade.SetColored] or [Facade.SetVivid]
// runs.
//
// Use [Config] to build a Facade from CLI flags via
// [github.com/spf13/pflag], with shell completion support via
// [github.com/spf13/cobra] and an optional YAML settings file:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	f, err := cfg.NewFacade(log.StdConsole())
//
// A [Handler] adapts a Facade to [log/slog]:
//
//	logger := slog.New(log.NewHandler(f))
package log
