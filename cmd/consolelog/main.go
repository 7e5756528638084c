// Command consolelog writes log lines through the console logging facade.
//
// # Usage
//
//	consolelog [flags] emit <entry> [args...]
//	consolelog [flags] demo
//	consolelog schema
//
// Entries are trace, debug, log, info, object, warn, error, errobj and
// fatal. The minimum level defaults to OFF, so pass --log-level to see
// output:
//
//	consolelog --log-level INFO --log-app sync emit info connected
//
// Pale color is on by default when stdout is a terminal. A YAML settings
// file passed with --log-config replaces the defaults; flags given on the
// command line still win.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/consolelog/log"
	"go.jacobcolvin.com/consolelog/version"
)

type sample struct {
	Tags   map[string]string
	Name   string
	Sizes  []int
	Active bool
}

func main() {
	diag := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: "consolelog"})

	rootCmd := newRootCmd(log.StdConsole(), os.Stdout, term.IsTerminal(int(os.Stdout.Fd())), diag)

	err := rootCmd.Execute()
	if err != nil {
		diag.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(console log.Console, out io.Writer, tty bool, diag *charmlog.Logger) *cobra.Command {
	cfg := log.NewConfig()

	var facade *log.Facade

	rootCmd := &cobra.Command{
		Use:           "consolelog",
		Short:         "Write log lines through the console logging facade",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if tty && !cmd.Flags().Changed(cfg.Flags.Colored) {
				cfg.Colored = true
			}

			f, err := cfg.NewFacade(console)
			if err != nil {
				return err
			}

			facade = f

			return nil
		},
	}

	cfg.RegisterFlags(rootCmd.PersistentFlags())

	registerCompletions(rootCmd, cfg, diag)

	names := log.FunctionSet{}.Names()

	emitCmd := &cobra.Command{
		Use:       "emit <entry> [args...]",
		Short:     "Write one line through the named entry",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			return emit(facade, args[0], args[1:])
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write one line through every entry",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			demo(facade)
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the --log-config settings file",
		Args:  cobra.NoArgs,
		// The schema does not depend on log settings.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := log.SchemaJSON()
			if err != nil {
				return err
			}

			_, err = out.Write(append(data, '\n'))
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}

	rootCmd.AddCommand(emitCmd, demoCmd, schemaCmd)

	return rootCmd
}

// registerCompletions reports failures through diag; the command still works
// without completions.
func registerCompletions(cmd *cobra.Command, cfg *log.Config, diag *charmlog.Logger) {
	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		diag.Warn("register completions", "err", err)
	}
}

func emit(f *log.Facade, name string, args []string) error {
	fn, ok := f.Logger().Func(name)
	if !ok {
		return fmt.Errorf("%w: unknown entry %q", log.ErrInvalidArgument, name)
	}

	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}

	fn(vals...)

	return nil
}

func demo(f *log.Facade) {
	obj := sample{
		Name:   "demo",
		Active: true,
		Sizes:  []int{1, 2, 3},
		Tags:   map[string]string{"env": "dev"},
	}
	errDemo := errors.New("something went wrong")

	f.Logger().Trace("trace line")
	f.Logger().Debug("debug line")
	f.Logger().Log("log line")
	f.Logger().Info("info line")
	f.Logger().Object(obj)
	f.Logger().Warn("warn line")
	f.Logger().Error("error line")
	f.Logger().ErrObj(errDemo)
	f.Logger().Fatal("fatal line", errDemo)
}
