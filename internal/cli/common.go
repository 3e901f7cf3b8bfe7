// Package cli implements the operator commands. Each command parses its own
// flags, opens the configured store, runs one state-store action and prints
// the result.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/learnhub/internal/config"
	"github.com/mrlokans/learnhub/internal/entities"
	"github.com/mrlokans/learnhub/internal/entrypoint"
	"github.com/mrlokans/learnhub/internal/logger"
)

var errNotSignedIn = errors.New("not signed in, run signin or signup first")

// baseCommand carries the settings every command shares.
type baseCommand struct {
	Config  *config.Config
	Out     io.Writer
	Verbose bool
}

func newBaseCommand() baseCommand {
	return baseCommand{Config: config.NewConfig(), Out: os.Stdout}
}

// registerStoreFlags lets the flags override the environment configuration.
func (b *baseCommand) registerStoreFlags(fs *flag.FlagSet) {
	fs.StringVar((*string)(&b.Config.Storage.Backend), "backend", string(b.Config.Storage.Backend), "Storage backend: sqlite, memory or redis")
	fs.StringVar(&b.Config.Database.Path, "db", b.Config.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&b.Config.Redis.Addr, "redis", b.Config.Redis.Addr, "Redis address for the redis backend")
	fs.BoolVar(&b.Verbose, "verbose", false, "Enable verbose logging")
}

func (b *baseCommand) logger() (*logger.Logger, error) {
	if !b.Verbose {
		return logger.NewNop(), nil
	}
	return logger.New(b.Config.Log.Mode)
}

func (b *baseCommand) open() (*entrypoint.App, error) {
	log, err := b.logger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return entrypoint.Open(b.Config, log)
}

// currentUser restores the persisted session.
func currentUser(app *entrypoint.App) (*entities.User, error) {
	if err := app.AuthStore.LoadUser(); err != nil {
		return nil, err
	}
	user := app.AuthStore.State().User
	if user == nil {
		return nil, errNotSignedIn
	}
	return user, nil
}

func (b *baseCommand) printf(format string, args ...any) {
	fmt.Fprintf(b.Out, format, args...)
}

func usage(fs *flag.FlagSet, synopsis, description string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n\n", os.Args[0], synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
}
