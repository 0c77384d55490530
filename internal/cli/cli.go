// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the dotenv command line tool.
package cli

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/z5labs/dotenv"
	"github.com/z5labs/dotenv/pkg/maskslog"
	"github.com/z5labs/dotenv/pkg/noop"
	"github.com/z5labs/dotenv/pkg/slogfield"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the name of every flag when it is
// resolved from the process environment, e.g. DOTENV_FILE.
const EnvPrefix = "DOTENV"

// Option are used to configure an App.
type Option func(*App)

// Name configures the name of the command.
func Name(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// Stdout configures where command output is written.
func Stdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// Stderr configures where diagnostic logs are written.
func Stderr(w io.Writer) Option {
	return func(a *App) {
		a.stderr = w
	}
}

// FS configures the file system env files are read from.
// The host file system is used by default.
func FS(fsys fs.FS) Option {
	return func(a *App) {
		a.fs = fsys
	}
}

// App is the dotenv command line tool.
type App struct {
	name   string
	stdout io.Writer
	stderr io.Writer
	fs     fs.FS
}

// New returns a fully initialized App.
func New(opts ...Option) *App {
	app := &App{
		name:   "dotenv",
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run executes the command with the given arguments. An OS interrupt
// cancels the context.Context given to the command.
func (app *App) Run(args ...string) error {
	cmd := buildCmd(app)
	cmd.SetArgs(args)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

type command struct {
	app *App
	v   *viper.Viper
	log *slog.Logger
}

func buildCmd(app *App) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &command{
		app: app,
		v:   v,
		log: noop.Logger(),
	}

	root := &cobra.Command{
		Use:           app.name,
		Short:         "Inspect and validate .env files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("verbose") {
				c.log = newLogger(app.stderr)
			}
			return nil
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	flags := root.PersistentFlags()
	flags.StringSliceP("file", "f", nil, "env files to read and merge in order (default: first of .env.local, .env, .env.development)")
	flags.BoolP("verbose", "v", false, "log debug information to stderr")
	bindFlags(v, flags.Lookup("file"), flags.Lookup("verbose"))

	root.AddCommand(
		printCmd(c),
		getCmd(c),
		checkCmd(c),
	)
	return root
}

func newLogger(w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(maskslog.NewHandler(
		h,
		maskslog.Match(dotenv.IsSensitiveKey, maskslog.AnonymousStringAttr),
	))
}

// readEnv reads the env files named by the file flag or, if none
// were given, the first default candidate which exists.
func (c *command) readEnv() (*dotenv.Environment, error) {
	opts := []dotenv.Option{dotenv.WithLogger(c.log)}
	if c.app.fs != nil {
		opts = append(opts, dotenv.WithFS(c.app.fs))
	}

	paths := c.v.GetStringSlice("file")
	var (
		env *dotenv.Environment
		err error
	)
	if len(paths) == 0 {
		env, err = dotenv.ReadDefault(opts...)
	} else {
		env, err = dotenv.ReadFiles(paths, opts...)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug(
		"loaded environment",
		slogfield.Paths(paths),
		slogfield.EntryCount(env.Len()),
		slog.Group("env", envAttrs(env)...),
	)
	return env, nil
}

// envAttrs holds the raw values of env. Masking is left to the handler.
func envAttrs(env *dotenv.Environment) []any {
	attrs := make([]any, 0, env.Len())
	for k, v := range env.All() {
		attrs = append(attrs, slogfield.String(k, v))
	}
	return attrs
}
